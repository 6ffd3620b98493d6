package ui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveEmptyPlaceholder(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "video.mp4")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	require.NoError(t, removeEmptyPlaceholder(empty))
	_, err := os.Stat(empty)
	assert.True(t, os.IsNotExist(err))

	full := filepath.Join(dir, "kept.mp4")
	require.NoError(t, os.WriteFile(full, []byte("data"), 0o644))
	require.NoError(t, removeEmptyPlaceholder(full))
	assert.FileExists(t, full)

	assert.NoError(t, removeEmptyPlaceholder(filepath.Join(dir, "absent.mp4")))
	assert.NoError(t, removeEmptyPlaceholder(dir))
}

func TestFilePicker_FinishCancelled(t *testing.T) {
	p := NewFilePicker(nil, nil)

	r := p.finish(nil, nil)
	assert.False(t, r.ok)
	assert.NoError(t, r.err)
	assert.Empty(t, r.path)
}

func TestFilePicker_FinishError(t *testing.T) {
	p := NewFilePicker(nil, nil)
	boom := errors.New("boom")

	r := p.finish(nil, boom)
	assert.False(t, r.ok)
	assert.ErrorIs(t, r.err, boom)
}
