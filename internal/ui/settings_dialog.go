package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-mov/internal/config"
	"github.com/ytget/yt-mov/internal/platform"
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 480
	SettingsDialogHeight float32 = 220
)

// SettingsDialog shows the effective configuration and whether the external
// tools can be found. Configuration is read only; edits go to config.yaml.
type SettingsDialog struct {
	config       *config.Config
	window       fyne.Window
	localization *Localization
	lookup       func(binary string) (string, error)

	downloaderLabel *widget.Label
	converterLabel  *widget.Label
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(cfg *config.Config, window fyne.Window, localization *Localization) *SettingsDialog {
	return &SettingsDialog{
		config:          cfg,
		window:          window,
		localization:    localization,
		lookup:          platform.LookupExecutable,
		downloaderLabel: widget.NewLabel(""),
		converterLabel:  widget.NewLabel(""),
	}
}

// Show refreshes the tool status and displays the dialog
func (sd *SettingsDialog) Show() {
	sd.refresh()

	form := container.NewVBox(
		sd.downloaderLabel,
		sd.converterLabel,
		widget.NewSeparator(),
		widget.NewLabel(fmt.Sprintf("%s: %s", sd.localization.GetText(KeyLanguage), sd.config.UI.Language)),
	)

	d := dialog.NewCustom(sd.localization.GetText(KeySettings), sd.localization.GetText(KeyClose), form, sd.window)
	d.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
	d.Show()
}

// refresh re-resolves both binaries and updates the status labels
func (sd *SettingsDialog) refresh() {
	sd.downloaderLabel.SetText(sd.toolLine(KeyDownloaderBinary, sd.config.Downloader.Binary))
	sd.converterLabel.SetText(sd.toolLine(KeyConverterBinary, sd.config.Converter.Binary))
}

func (sd *SettingsDialog) toolLine(nameKey, binary string) string {
	status := sd.localization.GetText(KeyToolFound)
	if path, err := sd.lookup(binary); err != nil {
		status = sd.localization.GetText(KeyToolMissing)
	} else {
		binary = path
	}
	return fmt.Sprintf(ToolStatusFormat, sd.localization.GetText(nameKey), binary, status)
}
