package editor

import (
	"fmt"
	"os"
)

// SaveCall records one SaveDocument invocation on a Recorder.
type SaveCall struct {
	Doc    DocumentHandle
	Path   string
	Format string
}

// Recorder is an in-memory Editor that records every call, for tests.
type Recorder struct {
	Opened   []string
	Saves    []SaveCall
	Closed   []WindowHandle
	Messages []string

	// OpenErr, when set, makes OpenDocument fail for every path.
	OpenErr error

	windowSeq int
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) OpenDocument(path string) (DocumentHandle, error) {
	if r.OpenErr != nil {
		return "", r.OpenErr
	}
	if _, err := os.Stat(path); err != nil {
		return "", err
	}
	r.Opened = append(r.Opened, path)
	return DocumentHandle(path), nil
}

func (r *Recorder) CreateWindow(doc DocumentHandle) (WindowHandle, error) {
	r.windowSeq++
	return WindowHandle(fmt.Sprintf("display-%d", r.windowSeq)), nil
}

func (r *Recorder) CloseWindow(win WindowHandle) error {
	r.Closed = append(r.Closed, win)
	return nil
}

func (r *Recorder) SaveDocument(doc DocumentHandle, path, format string) error {
	r.Saves = append(r.Saves, SaveCall{Doc: doc, Path: path, Format: format})
	return nil
}

func (r *Recorder) ReportMessage(text string) {
	r.Messages = append(r.Messages, text)
}
