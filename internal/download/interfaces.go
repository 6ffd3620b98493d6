package download

import "context"

// Downloader defines the interface for the first pipeline stage.
type Downloader interface {
	// Download blocks until yt-dlp exits. A nil error means exit status zero.
	Download(ctx context.Context, url, outputPath string) error
}
