package types

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// FileTypeFilter identifies one supported file type. It pairs a canonical
// extension with the alternate spellings that count as the same type and a
// case-insensitive glob used to list matching files. Filters are immutable
// once built; a session picks one and keeps it.
type FileTypeFilter struct {
	Name       string   // canonical extension, e.g. "png"
	Alternates []string // accepted alternate extensions, e.g. "jpeg" for jpg
	Format     string   // save-format hint handed to the editor

	pattern glob.Glob
}

// NewFileTypeFilter builds a filter for the given canonical extension.
// The format hint defaults to the extension itself when empty.
func NewFileTypeFilter(name string, alternates []string, format string) FileTypeFilter {
	name = strings.ToLower(strings.TrimPrefix(name, "."))
	if format == "" {
		format = name
	}
	lowered := make([]string, 0, len(alternates))
	for _, alt := range alternates {
		lowered = append(lowered, strings.ToLower(strings.TrimPrefix(alt, ".")))
	}
	f := FileTypeFilter{Name: name, Alternates: lowered, Format: format}
	f.pattern = glob.MustCompile(f.Glob())
	return f
}

// Glob returns the pattern matching every extension of this filter,
// e.g. "*.{jpg,jpeg}". Matching is done on lowercased basenames, which is
// what makes it case-insensitive.
func (f FileTypeFilter) Glob() string {
	exts := f.Extensions()
	if len(exts) == 1 {
		return "*." + exts[0]
	}
	return "*.{" + strings.Join(exts, ",") + "}"
}

// Extensions returns the canonical extension followed by the alternates.
func (f FileTypeFilter) Extensions() []string {
	return append([]string{f.Name}, f.Alternates...)
}

// Matches reports whether path's basename matches this filter, ignoring case.
func (f FileTypeFilter) Matches(path string) bool {
	return f.pattern.Match(strings.ToLower(filepath.Base(path)))
}

func (f FileTypeFilter) String() string {
	return f.Name
}

// BuiltinFilters returns the fixed filter set, in presentation order.
func BuiltinFilters() []FileTypeFilter {
	return []FileTypeFilter{
		NewFileTypeFilter("xcf", nil, "xcf"),
		NewFileTypeFilter("jpg", []string{"jpeg"}, "jpeg"),
		NewFileTypeFilter("bmp", nil, "bmp"),
		NewFileTypeFilter("png", nil, "png"),
		NewFileTypeFilter("tiff", []string{"tif"}, "tiff"),
		NewFileTypeFilter("orf", nil, "orf"),
	}
}

// FilterByName finds the filter whose canonical extension or alternate
// matches name, ignoring case.
func FilterByName(name string, filters []FileTypeFilter) (FileTypeFilter, bool) {
	name = strings.ToLower(strings.TrimPrefix(name, "."))
	for _, f := range filters {
		for _, ext := range f.Extensions() {
			if ext == name {
				return f, true
			}
		}
	}
	return FileTypeFilter{}, false
}

// FilterForPath infers the filter for a path from its extension,
// ignoring case.
func FilterForPath(path string, filters []FileTypeFilter) (FileTypeFilter, bool) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return FileTypeFilter{}, false
	}
	return FilterByName(ext, filters)
}

// FilterNames returns the canonical extension of every filter.
func FilterNames(filters []FileTypeFilter) []string {
	names := make([]string, 0, len(filters))
	for _, f := range filters {
		names = append(names, f.Name)
	}
	return names
}

// SupportedList renders the extension set for user messages,
// e.g. "bmp, jpg, png".
func SupportedList(filters []FileTypeFilter) string {
	names := FilterNames(filters)
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// ErrUnknownExtension builds the user-facing message for an extension that
// matches no filter.
func ErrUnknownExtension(path string, filters []FileTypeFilter) string {
	return fmt.Sprintf("%s is not a supported file type (supported: %s)",
		filepath.Base(path), SupportedList(filters))
}
