package config

import "github.com/ytget/yt-mov/internal/model"

// Config represents the application configuration. It is read once at
// startup and never written back.
type Config struct {
	Downloader DownloaderConfig `mapstructure:"downloader"`
	Converter  ConverterConfig  `mapstructure:"converter"`
	Window     WindowConfig     `mapstructure:"window"`
	UI         UIConfig         `mapstructure:"ui"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// DownloaderConfig configures the yt-dlp stage
type DownloaderConfig struct {
	Binary string `mapstructure:"binary"`
}

// ConverterConfig configures the ffmpeg stage
type ConverterConfig struct {
	Binary string `mapstructure:"binary"`
}

// WindowConfig contains the initial window size
type WindowConfig struct {
	Width  float32 `mapstructure:"width"`
	Height float32 `mapstructure:"height"`
}

// UIConfig contains interface settings
type UIConfig struct {
	Language    string `mapstructure:"language"` // system, en, ru, pt
	MaxLogLines int    `mapstructure:"max_log_lines"`
}

// LoggingConfig contains logging-related configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputPath string `mapstructure:"output_path"` // stdout, stderr, or file path
}

// Default values
const (
	DefaultDownloaderBinary = "yt-dlp"
	DefaultConverterBinary  = "ffmpeg"
	DefaultWindowWidth      = 800
	DefaultWindowHeight     = 320
	DefaultLanguage         = "system"
	DefaultLogLevel         = "info"
	DefaultLogFormat        = LogFormatConsole
	DefaultLogOutput        = "stderr"
)

// Logging formats
const (
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Downloader: DownloaderConfig{Binary: DefaultDownloaderBinary},
		Converter:  ConverterConfig{Binary: DefaultConverterBinary},
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
		},
		UI: UIConfig{
			Language:    DefaultLanguage,
			MaxLogLines: model.DefaultMaxLogLines,
		},
		Logging: LoggingConfig{
			Level:      DefaultLogLevel,
			Format:     DefaultLogFormat,
			OutputPath: DefaultLogOutput,
		},
	}
}

// GetLanguageOptions returns available language options
func GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
