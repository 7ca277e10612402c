// Package store persists the two sequencing tags: the process-scoped active
// filter ("seq-file-type") and the per-document window token
// ("display-number"). Every filestep invocation is its own process, so the
// process scope has to outlive a process; a small SQLite database under the
// user config dir carries it between invocations.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Scopes a tag can be attached to.
const (
	ScopeProcess  = "process"
	ScopeDocument = "document"
)

const schema = `
CREATE TABLE IF NOT EXISTS tags (
    scope TEXT NOT NULL,
    ref   TEXT NOT NULL DEFAULT '',
    key   TEXT NOT NULL,
    value TEXT NOT NULL,
    PRIMARY KEY (scope, ref, key)
);
`

// Store wraps the SQLite database holding the tags.
type Store struct {
	conn *sql.DB
}

// Open opens or creates the tag store at the given path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}

	conn, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	if _, err := conn.Exec(schema); err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			return nil, fmt.Errorf("init schema: %w (close: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{conn: conn}, nil
}

// OpenMemory opens an in-memory tag store (for testing).
func OpenMemory() (*Store, error) {
	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	if _, err := conn.Exec(schema); err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			return nil, fmt.Errorf("init schema: %w (close: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &Store{conn: conn}, nil
}

// Close closes the store.
func (s *Store) Close() error {
	return s.conn.Close()
}

// AttachTag sets a tag, replacing any existing value. ref is empty for the
// process scope and the document path for the document scope.
func (s *Store) AttachTag(scope, ref, key, value string) error {
	_, err := s.conn.Exec(`
		INSERT INTO tags (scope, ref, key, value)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(scope, ref, key) DO UPDATE SET value = excluded.value
	`, scope, ref, key, value)
	return err
}

// FindTag looks a tag up. The second return value reports whether it exists.
func (s *Store) FindTag(scope, ref, key string) (string, bool, error) {
	var value string
	err := s.conn.QueryRow(
		"SELECT value FROM tags WHERE scope = ? AND ref = ? AND key = ?",
		scope, ref, key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// DetachTag removes a tag. Removing an absent tag is not an error.
func (s *Store) DetachTag(scope, ref, key string) error {
	_, err := s.conn.Exec(
		"DELETE FROM tags WHERE scope = ? AND ref = ? AND key = ?",
		scope, ref, key,
	)
	return err
}

// AttachProcessTag sets a process-scoped tag.
func (s *Store) AttachProcessTag(key, value string) error {
	return s.AttachTag(ScopeProcess, "", key, value)
}

// FindProcessTag looks a process-scoped tag up.
func (s *Store) FindProcessTag(key string) (string, bool, error) {
	return s.FindTag(ScopeProcess, "", key)
}

// DetachProcessTag removes a process-scoped tag.
func (s *Store) DetachProcessTag(key string) error {
	return s.DetachTag(ScopeProcess, "", key)
}

// AttachDocumentTag sets a tag on one document.
func (s *Store) AttachDocumentTag(ref, key, value string) error {
	return s.AttachTag(ScopeDocument, ref, key, value)
}

// FindDocumentTag looks a document tag up.
func (s *Store) FindDocumentTag(ref, key string) (string, bool, error) {
	return s.FindTag(ScopeDocument, ref, key)
}

// DetachDocumentTag removes a tag from one document.
func (s *Store) DetachDocumentTag(ref, key string) error {
	return s.DetachTag(ScopeDocument, ref, key)
}
