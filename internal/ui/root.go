package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/yt-mov/internal/model"
	"github.com/ytget/yt-mov/internal/platform"
	"github.com/ytget/yt-mov/internal/session"
)

// Sender accepts messages for the session event loop
type Sender interface {
	Send(msg session.Message) bool
}

// ViewSource notifies listeners with every rendered view
type ViewSource interface {
	OnChange(fn func(session.View))
}

// MainWindow represents the main UI structure: two input rows, the download
// action, a status line and the diagnostics panel.
type MainWindow struct {
	window       fyne.Window
	sender       Sender
	localization *Localization
	logger       *zap.Logger
	onSettings   func()

	urlLabel    *widget.Label
	urlEntry    *widget.Entry
	pathLabel   *widget.Label
	pathEntry   *widget.Entry
	pickBtn     *widget.Button
	downloadBtn *widget.Button
	revealBtn   *widget.Button
	statusLabel *widget.Label
	spinner     *widget.ProgressBarInfinite
	logLabel    *widget.Label
	logScroll   *container.Scroll

	// reveal opens the converted file in the system file manager
	reveal func(path string) error

	stage       model.Stage
	outputPath  string
	pickedPaths int
	// rendering suppresses OnChanged echoes while Render updates the entries
	rendering bool
}

// NewMainWindow builds the window content and wires widget events to sender
func NewMainWindow(window fyne.Window, sender Sender, localization *Localization, logger *zap.Logger) *MainWindow {
	if logger == nil {
		logger = zap.NewNop()
	}
	if localization == nil {
		localization = NewLocalization()
	}

	w := &MainWindow{
		window:       window,
		sender:       sender,
		localization: localization,
		logger:       logger.Named("ui"),
		reveal:       platform.OpenFileInManager,
		stage:        model.StageIdle,
	}

	w.setupUI()
	w.Render(session.Render(model.NewSession()))
	return w
}

// SetOnSettings installs the handler for the settings menu item
func (w *MainWindow) SetOnSettings(fn func()) {
	w.onSettings = fn
	w.createMenu()
}

// setupUI creates and arranges all UI components
func (w *MainWindow) setupUI() {
	w.urlLabel = widget.NewLabel("")
	w.urlEntry = widget.NewEntry()
	w.urlEntry.OnChanged = func(text string) {
		if w.rendering {
			return
		}
		w.send(session.InputURL{Text: text})
	}
	// Enter in the URL field starts the download
	w.urlEntry.OnSubmitted = func(string) {
		w.send(session.StartDownload{})
	}

	w.pathLabel = widget.NewLabel("")
	w.pathEntry = widget.NewEntry()
	w.pathEntry.OnChanged = func(text string) {
		if w.rendering {
			return
		}
		w.send(session.InputSavePath{Text: text})
	}

	w.pickBtn = widget.NewButton("", func() {
		w.send(session.RequestFilePicker{})
	})

	w.downloadBtn = widget.NewButton("", func() {
		w.send(session.StartDownload{})
	})
	w.downloadBtn.Importance = widget.HighImportance

	w.revealBtn = widget.NewButton(IconFolder, w.onRevealFile)
	w.revealBtn.Importance = widget.LowImportance

	w.statusLabel = widget.NewLabel("")
	w.spinner = widget.NewProgressBarInfinite()
	w.spinner.Stop()
	w.spinner.Hide()

	w.logLabel = widget.NewLabel("")
	w.logLabel.Wrapping = fyne.TextWrapWord
	w.logLabel.TextStyle = fyne.TextStyle{Monospace: true}
	w.logScroll = container.NewVScroll(w.logLabel)
	w.logScroll.SetMinSize(fyne.NewSize(0, LogPanelMinH))

	urlRow := container.NewBorder(nil, nil, w.fixedLabel(w.urlLabel), nil, w.urlEntry)
	pathRow := container.NewBorder(nil, nil, w.fixedLabel(w.pathLabel), w.pickBtn, w.pathEntry)
	actionRow := container.NewBorder(nil, nil, w.downloadBtn, w.revealBtn,
		container.NewStack(w.statusLabel, w.spinner))

	top := container.NewVBox(urlRow, pathRow, actionRow, widget.NewSeparator())
	w.window.SetContent(container.NewBorder(top, nil, nil, nil, w.logScroll))

	w.refreshUITexts()
	w.createMenu()
}

// fixedLabel keeps both row labels the same width so the entries line up
func (w *MainWindow) fixedLabel(label *widget.Label) fyne.CanvasObject {
	return container.NewGridWrap(fyne.NewSize(LabelColumnWidth, label.MinSize().Height), label)
}

// createMenu creates the application menu
func (w *MainWindow) createMenu() {
	languageMenu := fyne.NewMenu(w.localization.GetText(KeyLanguage))
	for code, name := range w.localization.GetAvailableLanguages() {
		langCode := code
		item := fyne.NewMenuItem(name, func() {
			w.onLanguageChange(langCode)
		})
		item.Checked = w.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, item)
	}

	menus := []*fyne.Menu{languageMenu}
	if w.onSettings != nil {
		settingsItem := fyne.NewMenuItem(w.localization.GetText(KeySettings), w.onSettings)
		menus = append([]*fyne.Menu{fyne.NewMenu(w.localization.GetText(KeyFile), settingsItem)}, menus...)
	}

	w.window.SetMainMenu(fyne.NewMainMenu(menus...))
}

// onLanguageChange switches the UI language for this run only
func (w *MainWindow) onLanguageChange(langCode string) {
	w.localization.SetLanguage(langCode)
	w.refreshUITexts()
	w.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (w *MainWindow) refreshUITexts() {
	w.window.SetTitle(w.localization.GetText(KeyAppTitle))
	w.urlLabel.SetText(w.localization.GetText(KeyURLLabel))
	w.urlEntry.SetPlaceHolder(w.localization.GetText(KeyURLPlaceholder))
	w.pathLabel.SetText(w.localization.GetText(KeySavePathLabel))
	w.pickBtn.SetText(w.localization.GetText(KeySelectPath))
	w.downloadBtn.SetText(w.localization.GetText(KeyDownload))
	w.statusLabel.SetText(w.stageText(w.stage))
}

// Render applies a view to the widgets. It must run on the Fyne thread.
func (w *MainWindow) Render(v session.View) {
	// The entries own what the user types. Views may lag behind keystrokes,
	// so only a path chosen in the save dialog is written back.
	if v.PickedPaths != w.pickedPaths {
		w.pickedPaths = v.PickedPaths
		if w.pathEntry.Text != v.SavePath {
			w.rendering = true
			w.pathEntry.SetText(v.SavePath)
			w.rendering = false
		}
	}

	if v.DownloadEnabled {
		w.downloadBtn.Enable()
	} else {
		w.downloadBtn.Disable()
	}
	if v.PickEnabled {
		w.pickBtn.Enable()
	} else {
		w.pickBtn.Disable()
	}

	w.outputPath = v.OutputPath
	if v.Stage == model.StageCompleted && v.OutputPath != "" {
		w.revealBtn.Enable()
	} else {
		w.revealBtn.Disable()
	}

	if v.Busy {
		w.spinner.Show()
		w.spinner.Start()
		w.statusLabel.Hide()
	} else {
		w.spinner.Stop()
		w.spinner.Hide()
		w.statusLabel.Show()
	}

	if v.Stage == model.StageCompleted && w.stage != model.StageCompleted {
		w.notifyCompleted(v.DisplayName)
	}
	w.stage = v.Stage
	w.statusLabel.Importance = stageImportance(v.Stage)
	w.statusLabel.SetText(w.stageText(v.Stage))

	logText := strings.Join(v.Logs, LogLineSeparator)
	if w.logLabel.Text != logText {
		w.logLabel.SetText(logText)
		w.logScroll.ScrollToBottom()
	}
}

// Bind subscribes the window to views produced by source. Views arrive on
// the event loop goroutine and are handed to the Fyne thread.
func (w *MainWindow) Bind(source ViewSource) {
	source.OnChange(func(v session.View) {
		fyne.Do(func() {
			w.Render(v)
		})
	})
}

func (w *MainWindow) send(msg session.Message) {
	if w.sender == nil || !w.sender.Send(msg) {
		w.logger.Debug("message dropped", zap.String("type", messageName(msg)))
	}
}

// onRevealFile handles revealing the converted file in the system file manager
func (w *MainWindow) onRevealFile() {
	if w.outputPath == "" {
		return
	}
	if err := w.reveal(w.outputPath); err != nil {
		w.logger.Warn("failed to reveal file", zap.String("path", w.outputPath), zap.Error(err))
		widget.ShowPopUp(widget.NewLabel(w.localization.GetText(KeyErrorOpeningFile)+": "+err.Error()), w.window.Canvas())
		return
	}
	w.logger.Debug("file revealed", zap.String("path", w.outputPath))
}

// notifyCompleted sends a desktop notification for a finished conversion
func (w *MainWindow) notifyCompleted(name string) {
	a := fyne.CurrentApp()
	if a == nil {
		return
	}
	a.SendNotification(&fyne.Notification{
		Title:   w.localization.GetText(KeyStageCompleted),
		Content: name,
	})
}

func (w *MainWindow) stageText(stage model.Stage) string {
	switch stage {
	case model.StageDownloading:
		return w.localization.GetText(KeyStageDownloading)
	case model.StageConverting:
		return w.localization.GetText(KeyStageConverting)
	case model.StageCompleted:
		return w.localization.GetText(KeyStageCompleted)
	case model.StageDownloadFailed:
		return w.localization.GetText(KeyStageDownloadFail)
	case model.StageConvertFailed:
		return w.localization.GetText(KeyStageConvertFail)
	default:
		return w.localization.GetText(KeyStageIdle)
	}
}

func stageImportance(stage model.Stage) widget.Importance {
	switch {
	case stage.IsFailure():
		return widget.DangerImportance
	case stage == model.StageCompleted:
		return widget.SuccessImportance
	case stage.IsActive():
		return widget.WarningImportance
	default:
		return widget.MediumImportance
	}
}

func messageName(msg session.Message) string {
	switch msg.(type) {
	case session.InputURL:
		return "InputURL"
	case session.InputSavePath:
		return "InputSavePath"
	case session.RequestFilePicker:
		return "RequestFilePicker"
	case session.StartDownload:
		return "StartDownload"
	default:
		return "unknown"
	}
}
