package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/ytget/yt-mov/internal/config"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level    string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel},
		{"bogus", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			log, err := New(config.LoggingConfig{Level: tt.level, OutputPath: OutputStderr})
			require.NoError(t, err)
			assert.True(t, log.Core().Enabled(tt.expected))
			assert.False(t, log.Core().Enabled(tt.expected-1))
		})
	}
}

func TestNew_FileOutputJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "yt-mov.log")

	log, err := New(config.LoggingConfig{Level: "info", Format: FormatJSON, OutputPath: path})
	require.NoError(t, err)

	log.Info("running yt-dlp...")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"running yt-dlp..."`)
	assert.Contains(t, string(data), `"timestamp"`)
}

func TestNew_UnwritableFile(t *testing.T) {
	_, err := New(config.LoggingConfig{OutputPath: filepath.Join(t.TempDir(), "missing", "x.log")})
	assert.Error(t, err)
}

func TestNewDefault(t *testing.T) {
	log := NewDefault()
	require.NotNil(t, log)
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
}
