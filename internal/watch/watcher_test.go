package watch_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"filestep/internal/watch"
	"filestep/pkg/types"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngFilter(t *testing.T) types.FileTypeFilter {
	t.Helper()
	f, ok := types.FilterByName("png", types.BuiltinFilters())
	require.True(t, ok)
	return f
}

func TestNewRejectsMissingDirectory(t *testing.T) {
	_, err := watch.New(filepath.Join(t.TempDir(), "nope"), pngFilter(t))
	assert.Error(t, err)
}

func TestNewRejectsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.png")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	_, err := watch.New(path, pngFilter(t))
	assert.Error(t, err)
}

func TestWatcherReportsMatchingCreates(t *testing.T) {
	tmpDir := t.TempDir()

	watcher, err := watch.New(tmpDir, pngFilter(t))
	require.NoError(t, err)
	require.NoError(t, watcher.Start())
	defer watcher.Stop()

	// A non-matching file first; it must not produce an event.
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "notes.txt"), []byte("x"), 0644))
	// Then a matching one.
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "new.png"), []byte("x"), 0644))

	select {
	case event := <-watcher.Events():
		assert.Equal(t, filepath.Join(tmpDir, "new.png"), event.Path)
		assert.True(t, event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Write))
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for file event")
	}
}

func TestStartTwiceFails(t *testing.T) {
	watcher, err := watch.New(t.TempDir(), pngFilter(t))
	require.NoError(t, err)
	require.NoError(t, watcher.Start())
	defer watcher.Stop()

	assert.Error(t, watcher.Start())
}

func TestStopIsIdempotent(t *testing.T) {
	watcher, err := watch.New(t.TempDir(), pngFilter(t))
	require.NoError(t, err)
	require.NoError(t, watcher.Start())

	watcher.Stop()
	watcher.Stop()
}
