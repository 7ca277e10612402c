// Package sequence implements the file-sequencing session: open the first
// file of a type in a directory, then on each advance save the current file,
// close its window, and open the next one.
package sequence

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"filestep/internal/editor"
	"filestep/internal/errors"
	"filestep/internal/log"
	"filestep/internal/store"
	"filestep/pkg/types"
)

// Tag keys shared with any other frontend driving the same store.
const (
	// filterTagKey is the process-scoped tag naming the active filter.
	filterTagKey = "seq-file-type"
	// displayTagKey is the document-scoped tag holding the window token to
	// close on advance.
	displayTagKey = "display-number"
)

// AdvanceResult describes what one advance did.
type AdvanceResult struct {
	Saved    string // file that was saved
	Next     string // file opened afterwards, empty when Finished
	Window   string // window token of the newly opened file
	Finished bool   // true when Saved was the last file of the sequence
}

// Engine drives sequencing sessions against an editor and a tag store.
type Engine struct {
	editor  editor.Editor
	store   *store.Store
	filters []types.FileTypeFilter
}

// New creates an engine over the given collaborators. filters is the full
// supported set, built-ins plus any configured extras.
func New(ed editor.Editor, st *store.Store, filters []types.FileTypeFilter) *Engine {
	return &Engine{editor: ed, store: st, filters: filters}
}

// Filters returns the filter set the engine was built with.
func (e *Engine) Filters() []types.FileTypeFilter {
	return e.filters
}

// ListMatching lists the files in dir matching filter, as full paths in the
// sequence order: case-insensitive lexicographic on the basename, ties broken
// by byte order. The order is pinned here so a sequence replays identically
// on every platform; never rely on directory enumeration order.
//
// The listing is recomputed by every caller rather than cached, because the
// directory changes underneath an active session as files are edited.
func (e *Engine) ListMatching(dir string, filter types.FileTypeFilter) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error reading directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filter.Matches(entry.Name()) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Slice(files, func(i, j int) bool {
		a, b := filepath.Base(files[i]), filepath.Base(files[j])
		la, lb := strings.ToLower(a), strings.ToLower(b)
		if la != lb {
			return la < lb
		}
		return a < b
	})

	return files, nil
}

// StartFromDirectory opens the first file in dir matching filter and begins
// a session with it. Fails without creating a session when nothing matches.
func (e *Engine) StartFromDirectory(dir string, filter types.FileTypeFilter) (*types.Session, error) {
	files, err := e.ListMatching(dir, filter)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.NewSequenceError(
			fmt.Sprintf("no files of type %s", filter), dir, errors.NoMatchingFiles, nil)
	}

	return e.open(dir, filter, files[0])
}

// StartFromFile infers the filter from path's extension and begins a session
// with exactly that file. Fails when the extension matches no known filter.
func (e *Engine) StartFromFile(path string) (*types.Session, error) {
	filter, ok := types.FilterForPath(path, e.filters)
	if !ok {
		return nil, errors.NewSequenceError(
			types.ErrUnknownExtension(path, e.filters), path, errors.UnknownFileType, nil)
	}

	e.editor.ReportMessage(fmt.Sprintf("Sequencing files of type %s", filter))
	return e.open(filepath.Dir(path), filter, path)
}

// open is the shared tail of both start operations: open the document,
// put it on screen, and record the two session tags.
func (e *Engine) open(dir string, filter types.FileTypeFilter, path string) (*types.Session, error) {
	doc, err := e.editor.OpenDocument(path)
	if err != nil {
		return nil, err
	}
	win, err := e.editor.CreateWindow(doc)
	if err != nil {
		return nil, err
	}

	if err := e.store.AttachProcessTag(filterTagKey, filter.Name); err != nil {
		return nil, errors.NewStoreError("failed to record active filter", err)
	}
	if err := e.store.AttachDocumentTag(path, displayTagKey, string(win)); err != nil {
		return nil, errors.NewStoreError("failed to record window", err)
	}

	log.LogWithFields(log.F("file", path), log.F("type", filter.Name)).Debug("session started")

	return &types.Session{
		Directory:   dir,
		Filter:      filter,
		CurrentFile: path,
		Window:      string(win),
	}, nil
}

// Advance saves the document at docPath, closes its window, and opens the
// next file of the session's type in the same directory. On the last file it
// reports the end of the sequence and clears the session instead.
//
// docPath is the document's saved filename; an empty path means the document
// has never been saved and there is nothing to anchor the sequence to.
func (e *Engine) Advance(docPath string) (*AdvanceResult, error) {
	if docPath == "" || docPath == "-" {
		return nil, errors.NewSequenceError(
			"document has no filename; save it once before sequencing", "",
			errors.DocumentNotPersisted, nil)
	}

	filterName, ok, err := e.store.FindProcessTag(filterTagKey)
	if err != nil {
		return nil, errors.NewStoreError("failed to read active filter", err)
	}
	if !ok {
		return nil, errors.NewSequenceError(
			"no sequencing session is active", "", errors.NoActiveSession, nil)
	}
	filter, ok := types.FilterByName(filterName, e.filters)
	if !ok {
		return nil, errors.NewSequenceError(
			fmt.Sprintf("active session uses unknown type %q", filterName), "",
			errors.NoActiveSession, nil)
	}

	if !filter.Matches(docPath) {
		return nil, errors.NewSequenceError(
			fmt.Sprintf("file does not match the session type %s", filter), docPath,
			errors.FileTypeMismatch, nil)
	}

	doc := editor.DocumentHandle(docPath)
	if err := e.editor.SaveDocument(doc, docPath, filter.Format); err != nil {
		return nil, err
	}

	if win, ok, err := e.store.FindDocumentTag(docPath, displayTagKey); err != nil {
		return nil, errors.NewStoreError("failed to read window tag", err)
	} else if ok {
		if err := e.editor.CloseWindow(editor.WindowHandle(win)); err != nil {
			return nil, err
		}
		if err := e.store.DetachDocumentTag(docPath, displayTagKey); err != nil {
			return nil, errors.NewStoreError("failed to clear window tag", err)
		}
	}

	dir := filepath.Dir(docPath)
	files, err := e.ListMatching(dir, filter)
	if err != nil {
		return nil, err
	}

	idx := indexOf(files, docPath)
	if idx < 0 {
		return nil, errors.NewSequenceError(
			"file disappeared from its directory between save and relist", docPath,
			errors.Unknown, nil)
	}

	if idx == len(files)-1 {
		e.editor.ReportMessage(fmt.Sprintf(
			"This is the last file of type %s in %s. Sequence finished.", filter, dir))
		if err := e.store.DetachProcessTag(filterTagKey); err != nil {
			return nil, errors.NewStoreError("failed to clear session", err)
		}
		return &AdvanceResult{Saved: docPath, Finished: true}, nil
	}

	next := files[idx+1]
	nextDoc, err := e.editor.OpenDocument(next)
	if err != nil {
		return nil, err
	}
	win, err := e.editor.CreateWindow(nextDoc)
	if err != nil {
		return nil, err
	}
	if err := e.store.AttachDocumentTag(next, displayTagKey, string(win)); err != nil {
		return nil, errors.NewStoreError("failed to record window", err)
	}

	log.LogWithFields(log.F("saved", docPath), log.F("next", next)).Debug("advanced")

	return &AdvanceResult{Saved: docPath, Next: next, Window: string(win)}, nil
}

// ActiveFilter returns the filter of the active session, if any.
func (e *Engine) ActiveFilter() (types.FileTypeFilter, bool, error) {
	name, ok, err := e.store.FindProcessTag(filterTagKey)
	if err != nil {
		return types.FileTypeFilter{}, false, errors.NewStoreError("failed to read active filter", err)
	}
	if !ok {
		return types.FileTypeFilter{}, false, nil
	}
	filter, ok := types.FilterByName(name, e.filters)
	if !ok {
		return types.FileTypeFilter{}, false, nil
	}
	return filter, true, nil
}

// Cancel ends the active session without saving or opening anything.
func (e *Engine) Cancel() error {
	_, ok, err := e.store.FindProcessTag(filterTagKey)
	if err != nil {
		return errors.NewStoreError("failed to read active filter", err)
	}
	if !ok {
		return errors.NewSequenceError(
			"no sequencing session is active", "", errors.NoActiveSession, nil)
	}
	if err := e.store.DetachProcessTag(filterTagKey); err != nil {
		return errors.NewStoreError("failed to clear session", err)
	}
	e.editor.ReportMessage("Sequence cancelled.")
	return nil
}

func indexOf(files []string, path string) int {
	clean := filepath.Clean(path)
	for i, f := range files {
		if filepath.Clean(f) == clean {
			return i
		}
	}
	return -1
}
