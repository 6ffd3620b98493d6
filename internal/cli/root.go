// Package cli wires configuration, logging and the session program into the
// yt-mov commands: the desktop window (default), headless run, and check.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/yt-mov/internal/config"
	"github.com/ytget/yt-mov/internal/convert"
	"github.com/ytget/yt-mov/internal/download"
	"github.com/ytget/yt-mov/internal/logger"
	"github.com/ytget/yt-mov/internal/platform"
	"github.com/ytget/yt-mov/internal/session"
)

// Application identity
const (
	AppID   = "com.ytget.yt-mov"
	AppName = "yt-mov"
)

// rootOptions holds flag values and what PersistentPreRunE builds from them
type rootOptions struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *zap.Logger
}

// NewRootCommand creates the root command. Without a subcommand it opens the
// desktop window.
func NewRootCommand(version string) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   AppName,
		Short: "Download a video with yt-dlp and convert it to MOV with ffmpeg",
		Long: `yt-mov downloads a video with yt-dlp (merged to MP4) and then converts
the file to QuickTime MOV with ffmpeg, next to the MP4.

Run without arguments to open the desktop window, or use "run" from a terminal.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd.Context(), opts, version)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(newRunCommand(opts))
	rootCmd.AddCommand(newCheckCommand(opts))
	rootCmd.AddCommand(newVersionCommand(version))

	return rootCmd
}

// setup loads configuration and builds the logger
func (o *rootOptions) setup() error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
	}

	log, err := logger.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	o.cfg = cfg
	o.logger = log
	o.logger.Debug("configuration loaded",
		zap.String("downloader", cfg.Downloader.Binary),
		zap.String("converter", cfg.Converter.Binary),
		zap.String("log_level", cfg.Logging.Level),
	)
	return nil
}

// newEnv builds the session collaborators from configuration
func newEnv(cfg *config.Config, log *zap.Logger, picker session.FilePicker) session.Env {
	return session.Env{
		Downloader:  download.NewService(cfg.Downloader.Binary, log),
		Converter:   convert.NewService(cfg.Converter.Binary, log),
		Picker:      picker,
		Dialog:      session.DefaultSaveDialog(platform.ExistingDownloadsDir()),
		MaxLogLines: cfg.UI.MaxLogLines,
	}
}
