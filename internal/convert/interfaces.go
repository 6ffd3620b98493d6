package convert

import "context"

// Result describes a finished conversion
type Result struct {
	OutputPath string
	Size       int64 // bytes written, 0 if the file could not be measured
}

// Converter defines the interface for the second pipeline stage.
type Converter interface {
	// Convert blocks until ffmpeg exits. The returned Result carries the
	// output path even when err is non-nil.
	Convert(ctx context.Context, inputPath string) (Result, error)
}
