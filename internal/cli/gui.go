package cli

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/yt-mov/internal/session"
	"github.com/ytget/yt-mov/internal/ui"
)

// runGUI opens the desktop window and blocks until it is closed
func runGUI(ctx context.Context, opts *rootOptions, version string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.logger
	cfg := opts.cfg
	log.Info("starting", zap.String("app", AppName), zap.String("version", version))

	fyneApp := app.NewWithID(AppID)
	fyneApp.Settings().SetTheme(ui.NewCompactTheme())

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	if icon, err := ui.LoadAppIcon(""); err == nil {
		window.SetIcon(icon)
	} else {
		log.Debug("app icon not loaded", zap.Error(err))
	}

	localization := ui.NewLocalization()
	localization.SetLanguage(cfg.UI.Language)

	env := newEnv(cfg, log, ui.NewFilePicker(window, log))
	program := session.NewProgram(env, log)

	mainWindow := ui.NewMainWindow(window, program, localization, log)
	mainWindow.SetOnSettings(ui.NewSettingsDialog(cfg, window, localization).Show)
	mainWindow.Bind(program)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	runErr := make(chan error, 1)
	go func() {
		runErr <- program.Run(ctx)
	}()

	window.ShowAndRun()

	// closing the window kills any yt-dlp or ffmpeg still running
	cancel()
	<-runErr
	log.Info("window closed")
	return nil
}
