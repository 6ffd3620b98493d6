package ui

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/ytget/yt-mov/internal/config"
)

func TestSettingsDialog_ToolStatus(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	cfg := config.DefaultConfig()
	sd := NewSettingsDialog(cfg, a.NewWindow("test"), NewLocalization())
	sd.lookup = func(binary string) (string, error) {
		if binary == "yt-dlp" {
			return "/usr/bin/yt-dlp", nil
		}
		return "", errors.New("not found")
	}

	sd.refresh()

	assert.Equal(t, "Downloader: /usr/bin/yt-dlp (found)", sd.downloaderLabel.Text)
	assert.Equal(t, "Converter: ffmpeg (not found)", sd.converterLabel.Text)
}
