package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkdir(path string) error {
	return os.MkdirAll(path, 0o755)
}

func writeExecutable(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755))
	return path
}

func TestLookupExecutable(t *testing.T) {
	dir := t.TempDir()
	ytdlp := writeExecutable(t, dir, "yt-dlp")
	t.Setenv("PATH", dir)

	t.Run("absolute path", func(t *testing.T) {
		p, err := LookupExecutable(ytdlp)
		require.NoError(t, err)
		assert.Equal(t, ytdlp, p)
	})

	t.Run("name in PATH", func(t *testing.T) {
		p, err := LookupExecutable("yt-dlp")
		require.NoError(t, err)
		assert.Equal(t, ytdlp, p)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := LookupExecutable("ffmpeg")
		assert.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := LookupExecutable("")
		assert.Error(t, err)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := LookupExecutable(dir)
		assert.Error(t, err)
	})
}

func TestCheckTools(t *testing.T) {
	dir := t.TempDir()
	writeExecutable(t, dir, "yt-dlp")
	t.Setenv("PATH", dir)

	statuses := CheckTools(
		Tool{Name: "yt-dlp", Binary: "yt-dlp"},
		Tool{Name: "ffmpeg", Binary: "ffmpeg"},
	)

	require.Len(t, statuses, 2)
	assert.True(t, statuses[0].Found())
	assert.Equal(t, filepath.Join(dir, "yt-dlp"), statuses[0].Path)
	assert.False(t, statuses[1].Found())
	assert.Equal(t, "ffmpeg", statuses[1].Name)
}
