package store_test

import (
	"path/filepath"
	"testing"

	"filestep/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessTagRoundTrip(t *testing.T) {
	st, err := store.OpenMemory()
	require.NoError(t, err)
	defer func() { _ = st.Close() }()

	_, ok, err := st.FindProcessTag("seq-file-type")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, st.AttachProcessTag("seq-file-type", "png"))

	value, ok, err := st.FindProcessTag("seq-file-type")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "png", value)

	// Attaching again replaces the value
	require.NoError(t, st.AttachProcessTag("seq-file-type", "jpg"))
	value, _, err = st.FindProcessTag("seq-file-type")
	require.NoError(t, err)
	assert.Equal(t, "jpg", value)

	require.NoError(t, st.DetachProcessTag("seq-file-type"))
	_, ok, err = st.FindProcessTag("seq-file-type")
	require.NoError(t, err)
	assert.False(t, ok)

	// Detaching an absent tag is not an error
	assert.NoError(t, st.DetachProcessTag("seq-file-type"))
}

func TestDocumentTagsAreScopedPerDocument(t *testing.T) {
	st, err := store.OpenMemory()
	require.NoError(t, err)
	defer func() { _ = st.Close() }()

	require.NoError(t, st.AttachDocumentTag("/pics/a.png", "display-number", "7"))
	require.NoError(t, st.AttachDocumentTag("/pics/b.png", "display-number", "8"))

	value, ok, err := st.FindDocumentTag("/pics/a.png", "display-number")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "7", value)

	require.NoError(t, st.DetachDocumentTag("/pics/a.png", "display-number"))
	_, ok, err = st.FindDocumentTag("/pics/a.png", "display-number")
	require.NoError(t, err)
	assert.False(t, ok)

	// b's tag is untouched
	value, ok, err = st.FindDocumentTag("/pics/b.png", "display-number")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "8", value)
}

func TestScopesDoNotCollide(t *testing.T) {
	st, err := store.OpenMemory()
	require.NoError(t, err)
	defer func() { _ = st.Close() }()

	require.NoError(t, st.AttachProcessTag("display-number", "process-value"))
	require.NoError(t, st.AttachDocumentTag("", "display-number", "document-value"))

	value, ok, err := st.FindProcessTag("display-number")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "process-value", value)
}

func TestTagsSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	st, err := store.Open(path)
	require.NoError(t, err)
	require.NoError(t, st.AttachProcessTag("seq-file-type", "tiff"))
	require.NoError(t, st.Close())

	// A second handle on the same file sees the tag, which is what lets one
	// invocation start a session and a later one advance it.
	st2, err := store.Open(path)
	require.NoError(t, err)
	defer func() { _ = st2.Close() }()

	value, ok, err := st2.FindProcessTag("seq-file-type")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tiff", value)
}

func TestOpenCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "state.db")

	st, err := store.Open(path)
	require.NoError(t, err)
	defer func() { _ = st.Close() }()

	require.NoError(t, st.AttachProcessTag("k", "v"))
}
