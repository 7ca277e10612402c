// Package editor defines the narrow contract filestep needs from the host
// editor. The editor owns documents and windows; filestep only ever holds
// opaque handles to them.
package editor

// DocumentHandle identifies an open document in the external editor.
type DocumentHandle string

// WindowHandle identifies an on-screen window owned by the external editor.
type WindowHandle string

// Editor is the external collaborator a sequencing session drives.
type Editor interface {
	// OpenDocument opens the file at path. Fails if the path is unreadable.
	OpenDocument(path string) (DocumentHandle, error)
	// CreateWindow puts the document on screen and returns the window token.
	CreateWindow(doc DocumentHandle) (WindowHandle, error)
	// CloseWindow closes a window previously returned by CreateWindow.
	CloseWindow(win WindowHandle) error
	// SaveDocument writes the document to path in the given format.
	SaveDocument(doc DocumentHandle, path, format string) error
	// ReportMessage shows a non-blocking notification to the operator.
	ReportMessage(text string)
}
