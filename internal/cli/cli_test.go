package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/yt-mov/internal/convert"
	"github.com/ytget/yt-mov/internal/model"
	"github.com/ytget/yt-mov/internal/session"
)

type fakeDownloader struct {
	err error
}

func (f *fakeDownloader) Download(ctx context.Context, url, outputPath string) error {
	return f.err
}

type fakeConverter struct {
	inputs []string
	err    error
}

func (f *fakeConverter) Convert(ctx context.Context, inputPath string) (convert.Result, error) {
	f.inputs = append(f.inputs, inputPath)
	if f.err != nil {
		return convert.Result{}, f.err
	}
	return convert.Result{OutputPath: convert.OutputPath(inputPath), Size: 1024}, nil
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand("1.2.3")
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, downloader, converter string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "downloader:\n  binary: " + downloader + "\nconverter:\n  binary: " + converter +
		"\nlogging:\n  level: error\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunHeadless_Success(t *testing.T) {
	conv := &fakeConverter{}
	env := session.Env{Downloader: &fakeDownloader{}, Converter: conv}
	out := &bytes.Buffer{}

	state, err := runHeadless(context.Background(), env, nil, "https://y.tb/a", "/x/video.mp4", out)

	require.NoError(t, err)
	assert.Equal(t, model.StageCompleted, state.Stage)
	assert.False(t, state.Downloading)
	assert.Equal(t, "/x/video.mov", state.OutputPath)
	assert.Equal(t, []string{"/x/video.mp4"}, conv.inputs)
	assert.Contains(t, out.String(), session.LogRunningDownloader)
	assert.Contains(t, out.String(), session.LogRunningConverter)
	assert.Contains(t, out.String(), session.LogPipelineSucceeded)
}

func TestRunHeadless_DownloadFailure(t *testing.T) {
	conv := &fakeConverter{}
	env := session.Env{Downloader: &fakeDownloader{err: errors.New("exit status 1")}, Converter: conv}

	state, err := runHeadless(context.Background(), env, nil, "u", "/x/video.mp4", &bytes.Buffer{})

	assert.ErrorIs(t, err, ErrDownloadFailed)
	assert.Equal(t, model.StageDownloadFailed, state.Stage)
	assert.Empty(t, conv.inputs)
}

func TestRunHeadless_ConvertFailure(t *testing.T) {
	env := session.Env{
		Downloader: &fakeDownloader{},
		Converter:  &fakeConverter{err: errors.New("exit status 1")},
	}

	state, err := runHeadless(context.Background(), env, nil, "u", "/x/video.mp4", &bytes.Buffer{})

	assert.ErrorIs(t, err, ErrConvertFailed)
	assert.Equal(t, model.StageConvertFailed, state.Stage)
	assert.False(t, state.Downloading)
}

func TestRunHeadless_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	env := session.Env{Downloader: &fakeDownloader{}, Converter: &fakeConverter{}}
	_, err := runHeadless(ctx, env, nil, "u", "/x/video.mp4", &bytes.Buffer{})

	// a cancelled context may still race a fast pipeline to completion
	if err != nil {
		assert.ErrorIs(t, err, context.Canceled)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "yt-mov 1.2.3")
	assert.Contains(t, out, "Go version:")
}

func TestCheckCommand(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script fakes need a POSIX shell")
	}

	dir := t.TempDir()
	ytdlp := filepath.Join(dir, "yt-dlp")
	require.NoError(t, os.WriteFile(ytdlp, []byte("#!/bin/sh\nexit 0\n"), 0o755))

	t.Run("missing converter", func(t *testing.T) {
		cfg := writeConfig(t, ytdlp, filepath.Join(dir, "ffmpeg"))
		out, err := executeCommand(t, "check", "--config", cfg)

		assert.ErrorIs(t, err, ErrToolsMissing)
		assert.Contains(t, out, "yt-dlp   ok")
		assert.Contains(t, out, "ffmpeg   missing")
	})

	t.Run("all found", func(t *testing.T) {
		ffmpeg := filepath.Join(dir, "ffmpeg")
		require.NoError(t, os.WriteFile(ffmpeg, []byte("#!/bin/sh\nexit 0\n"), 0o755))

		cfg := writeConfig(t, ytdlp, ffmpeg)
		out, err := executeCommand(t, "check", "--config", cfg)

		require.NoError(t, err)
		assert.NotContains(t, out, "missing")
	})
}

func TestRootCommand_InvalidLogLevel(t *testing.T) {
	cfg := writeConfig(t, "yt-dlp", "ffmpeg")
	_, err := executeCommand(t, "check", "--config", cfg, "--log-level", "loud")
	assert.Error(t, err)
}

func TestRunCommand_RequiresOutput(t *testing.T) {
	cfg := writeConfig(t, "yt-dlp", "ffmpeg")
	_, err := executeCommand(t, "run", "https://y.tb/a", "--config", cfg)
	assert.Error(t, err)
}
