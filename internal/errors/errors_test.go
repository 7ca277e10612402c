package errors_test

import (
	"fmt"
	"testing"

	"filestep/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestSequenceErrorMessageIncludesPath(t *testing.T) {
	err := errors.NewSequenceError("no files of type png", "/pics", errors.NoMatchingFiles, nil)
	assert.Equal(t, "no files of type png: /pics", err.Error())
	assert.Equal(t, "/pics", err.Path())
	assert.Equal(t, errors.NoMatchingFiles, err.Kind())
}

func TestSequenceErrorWithoutPath(t *testing.T) {
	err := errors.NewSequenceError("no sequencing session is active", "", errors.NoActiveSession, nil)
	assert.Equal(t, "no sequencing session is active", err.Error())
}

func TestKindOfWrappedError(t *testing.T) {
	inner := errors.NewSequenceError("mismatch", "a.jpg", errors.FileTypeMismatch, nil)
	wrapped := fmt.Errorf("advance failed: %w", inner)

	assert.Equal(t, errors.FileTypeMismatch, errors.KindOf(wrapped))
	assert.Equal(t, errors.Unknown, errors.KindOf(fmt.Errorf("plain")))
	assert.Equal(t, errors.Unknown, errors.KindOf(nil))
}

func TestUnwrapReachesCause(t *testing.T) {
	cause := fmt.Errorf("disk gone")
	err := errors.NewStoreError("failed to record window", cause)

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, errors.StoreFailed, errors.KindOf(err))
	assert.Contains(t, err.Error(), "disk gone")
}
