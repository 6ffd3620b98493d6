package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// FFmpeg constants
const (
	DefaultBinary       = "ffmpeg"
	OutputFormat        = "mov"
	OutputExtensionMOV  = ".mov"
	stderrTailMaxLength = 512
)

// ErrEmptyInput is returned when there is no input path to convert
var ErrEmptyInput = errors.New("input path is empty")

// Service handles the conversion stage
type Service struct {
	binary string
	logger *zap.Logger
}

// NewService creates a new conversion service. An empty binary means "ffmpeg"
// resolved through PATH.
func NewService(binary string, logger *zap.Logger) *Service {
	if binary == "" {
		binary = DefaultBinary
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		binary: binary,
		logger: logger.Named("convert"),
	}
}

// Binary returns the executable the service runs
func (s *Service) Binary() string {
	return s.binary
}

// Convert remuxes inputPath into OutputPath(inputPath) and waits for ffmpeg
// to exit. Only the exit status decides success.
func (s *Service) Convert(ctx context.Context, inputPath string) (Result, error) {
	if inputPath == "" {
		return Result{}, ErrEmptyInput
	}

	result := Result{OutputPath: OutputPath(inputPath)}
	args := BuildFFmpegArgs(inputPath, result.OutputPath)

	s.logger.Info("running ffmpeg",
		zap.String("binary", s.binary),
		zap.Strings("args", args),
	)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, s.binary, args...)
	cmd.Stderr = &stderr

	started := time.Now()
	if err := cmd.Run(); err != nil {
		s.logger.Warn("ffmpeg failed",
			zap.Error(err),
			zap.Duration("elapsed", time.Since(started)),
			zap.String("stderr_tail", tail(stderr.String(), stderrTailMaxLength)),
		)
		return result, fmt.Errorf("ffmpeg failed: %w", err)
	}

	if info, err := os.Stat(result.OutputPath); err == nil {
		result.Size = info.Size()
	}

	s.logger.Info("ffmpeg finished",
		zap.String("output", result.OutputPath),
		zap.String("size", humanize.Bytes(uint64(result.Size))),
		zap.Duration("elapsed", time.Since(started)),
	)
	return result, nil
}

// BuildFFmpegArgs builds the ffmpeg command arguments
func BuildFFmpegArgs(inputPath, outputPath string) []string {
	return []string{
		"-i", inputPath, // Input file
		"-f", OutputFormat, // Container format
		outputPath, // Output file
	}
}

// OutputPath returns inputPath with its extension replaced by ".mov".
// A path without an extension simply gains one.
func OutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + OutputExtensionMOV
}

// tail returns the last n bytes of s
func tail(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
