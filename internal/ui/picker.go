package ui

import (
	"context"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"go.uber.org/zap"

	"github.com/ytget/yt-mov/internal/model"
)

// FilePicker shows the Fyne save dialog on behalf of the session. The dialog
// is callback driven, so PickSavePath blocks until the callback fires.
type FilePicker struct {
	window fyne.Window
	logger *zap.Logger
}

// NewFilePicker creates a picker that parents its dialogs to window
func NewFilePicker(window fyne.Window, logger *zap.Logger) *FilePicker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FilePicker{window: window, logger: logger.Named("picker")}
}

type pickResult struct {
	path string
	ok   bool
	err  error
}

// PickSavePath opens the dialog and waits for confirm or cancel. Fyne has no
// API for the dialog title or the filter label, so only the file name,
// extension filter and start location of opts are applied.
func (p *FilePicker) PickSavePath(ctx context.Context, opts model.SaveDialog) (string, bool, error) {
	result := make(chan pickResult, 1)

	fyne.Do(func() {
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			result <- p.finish(writer, err)
		}, p.window)

		if opts.FileName != "" {
			d.SetFileName(opts.FileName)
		}
		if len(opts.Extensions) > 0 {
			d.SetFilter(storage.NewExtensionFileFilter(opts.Extensions))
		}
		if opts.Location != "" {
			if lister, err := storage.ListerForURI(storage.NewFileURI(opts.Location)); err == nil {
				d.SetLocation(lister)
			} else {
				p.logger.Debug("dialog location unavailable", zap.String("location", opts.Location), zap.Error(err))
			}
		}
		d.Show()
	})

	select {
	case r := <-result:
		return r.path, r.ok, r.err
	case <-ctx.Done():
		return "", false, ctx.Err()
	}
}

// finish turns the dialog callback into a result. Fyne creates the chosen
// file on confirm; the empty placeholder is removed again.
func (p *FilePicker) finish(writer fyne.URIWriteCloser, err error) pickResult {
	if err != nil {
		return pickResult{err: fmt.Errorf("save dialog failed: %w", err)}
	}
	if writer == nil {
		return pickResult{}
	}

	path := writer.URI().Path()
	if err := writer.Close(); err != nil {
		p.logger.Debug("failed to close placeholder", zap.String("path", path), zap.Error(err))
	}
	if err := removeEmptyPlaceholder(path); err != nil {
		p.logger.Warn("failed to remove placeholder", zap.String("path", path), zap.Error(err))
	}
	return pickResult{path: path, ok: true}
}

// removeEmptyPlaceholder deletes path if it is an empty regular file
func removeEmptyPlaceholder(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if !info.Mode().IsRegular() || info.Size() > 0 {
		return nil
	}
	return os.Remove(path)
}
