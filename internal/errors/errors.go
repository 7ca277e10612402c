// Package errors provides standardized error handling for filestep.
// It defines the sequencing error kinds, constructors for consistent error
// creation, and helpers for classifying errors at the CLI boundary.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package functions re-exported for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Sequencing error kinds
	NoMatchingFiles
	UnknownFileType
	DocumentNotPersisted
	NoActiveSession
	FileTypeMismatch
	// Config error kinds
	InvalidConfig
	// Collaborator error kinds
	StoreFailed
	EditorFailed
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// SequenceError represents a failure of a sequencing operation, carrying the
// path it refers to when one exists.
type SequenceError struct {
	ApplicationError
	path string
}

// NewSequenceError creates a new sequence error
func NewSequenceError(msg string, path string, kind ErrorKind, err error) *SequenceError {
	return &SequenceError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the sequence error message
func (e *SequenceError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the path associated with the error
func (e *SequenceError) Path() string {
	return e.path
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, err error) *ApplicationError {
	return &ApplicationError{msg: msg, err: err, kind: InvalidConfig}
}

// NewStoreError creates a new tag store error
func NewStoreError(msg string, err error) *ApplicationError {
	return &ApplicationError{msg: msg, err: err, kind: StoreFailed}
}

// NewEditorError creates a new external editor error
func NewEditorError(msg string, err error) *ApplicationError {
	return &ApplicationError{msg: msg, err: err, kind: EditorFailed}
}

// kinder is implemented by every error type in this package.
type kinder interface {
	Kind() ErrorKind
}

// KindOf classifies an error chain, returning Unknown for errors that did
// not originate here.
func KindOf(err error) ErrorKind {
	var k kinder
	if As(err, &k) {
		return k.Kind()
	}
	return Unknown
}
