package download

import (
	"context"
	"fmt"
	"time"

	"github.com/lrstanley/go-ytdlp"
	"go.uber.org/zap"
)

// yt-dlp constants
const (
	DefaultBinary     = "yt-dlp"
	MergeOutputFormat = "mp4"
)

// Service handles the download stage
type Service struct {
	binary string
	logger *zap.Logger
}

// NewService creates a new download service. An empty binary means "yt-dlp"
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
		logger: logger.Named("download"),
	}
}

// Binary returns the executable the service runs
func (s *Service) Binary() string {
	return s.binary
}

// Download runs yt-dlp for url and waits for it to exit. stdout and stderr are
// not inspected; only the exit status decides success. A missing executable is
// reported as an error like any other failure.
func (s *Service) Download(ctx context.Context, url, outputPath string) error {
	dl := s.buildCommand(outputPath)

	s.logger.Info("running yt-dlp",
		zap.String("binary", s.binary),
		zap.String("url", url),
		zap.String("output", outputPath),
	)

	started := time.Now()
	result, err := dl.Run(ctx, url)
	if err != nil {
		fields := []zap.Field{zap.Error(err), zap.Duration("elapsed", time.Since(started))}
		if result != nil {
			fields = append(fields, zap.Int("exit_code", result.ExitCode))
		}
		s.logger.Warn("yt-dlp failed", fields...)
		return fmt.Errorf("yt-dlp failed: %w", err)
	}

	s.logger.Info("yt-dlp finished", zap.Duration("elapsed", time.Since(started)))
	return nil
}

// buildCommand configures yt-dlp to merge into an MP4 at outputPath
func (s *Service) buildCommand(outputPath string) *ytdlp.Command {
	return ytdlp.New().
		SetExecutable(s.binary).
		MergeOutputFormat(MergeOutputFormat).
		Output(outputPath)
}
