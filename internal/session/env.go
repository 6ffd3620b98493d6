package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/yt-mov/internal/convert"
	"github.com/ytget/yt-mov/internal/download"
	"github.com/ytget/yt-mov/internal/model"
)

// Save dialog defaults
const (
	DialogTitle       = "Save youtube video"
	DialogFileName    = "video.mp4"
	DialogFilterLabel = "Video"
	DialogExtension   = ".mp4"
)

// RunIDPrefix prefixes every pipeline run id
const RunIDPrefix = "run-"

// FilePicker shows a save dialog and blocks until the user answers.
// ok is false when the dialog was cancelled.
type FilePicker interface {
	PickSavePath(ctx context.Context, opts model.SaveDialog) (path string, ok bool, err error)
}

// Env carries the collaborators Update hands to the commands it returns.
// Update itself never calls them.
type Env struct {
	Downloader  download.Downloader
	Converter   convert.Converter
	Picker      FilePicker
	Dialog      model.SaveDialog
	MaxLogLines int
	NewRunID    func() string
}

// DefaultSaveDialog returns the dialog options for picking the MP4 target
func DefaultSaveDialog(location string) model.SaveDialog {
	return model.SaveDialog{
		Title:       DialogTitle,
		FileName:    DialogFileName,
		FilterLabel: DialogFilterLabel,
		Extensions:  []string{DialogExtension},
		Location:    location,
	}
}

// runID returns a fresh run id from env or the default generator
func (e Env) runID() string {
	if e.NewRunID != nil {
		return e.NewRunID()
	}
	return generateRunID()
}

// generateRunID uses UUID v7 so ids sort by creation time
func generateRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(RunIDPrefix+"%d", time.Now().UnixNano())
	}
	return RunIDPrefix + id.String()
}
