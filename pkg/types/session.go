package types

// Session is one sequencing run: a directory, the filter chosen for it, and
// the file currently open in the external editor. The editor owns the actual
// document and window; the session only keeps the opaque window token so the
// next advance knows what to close.
type Session struct {
	Directory   string
	Filter      FileTypeFilter
	CurrentFile string
	Window      string
}

// Active reports whether the session still has a file open.
func (s *Session) Active() bool {
	return s != nil && s.CurrentFile != ""
}
