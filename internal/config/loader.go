package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Config file lookup
const (
	ConfigName = "config"
	ConfigType = "yaml"
	EnvPrefix  = "YTMOV"
	AppDirName = "yt-mov"
)

// Validation errors
var (
	ErrEmptyBinary  = errors.New("binary must not be empty")
	ErrWindowSize   = errors.New("window size must be positive")
	ErrLogLines     = errors.New("max_log_lines must be at least 1")
	ErrLanguage     = errors.New("unsupported language")
	ErrLoggingLevel = errors.New("invalid logging level")
	ErrLogFormat    = errors.New("invalid logging format")
)

// Load loads configuration from file and environment. An empty configPath
// searches the working directory, the user config directory and /etc. A
// missing file is not an error; defaults apply.
func Load(configPath string) (*Config, error) {
	config := DefaultConfig()

	v := viper.New()
	v.SetConfigType(ConfigType)

	if configPath != "" {
		v.SetConfigFile(expandPath(configPath))
	} else {
		v.SetConfigName(ConfigName)
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, AppDirName))
		}
		v.AddConfigPath(filepath.Join("/etc", AppDirName))
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, config)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.Downloader.Binary = expandPath(config.Downloader.Binary)
	config.Converter.Binary = expandPath(config.Converter.Binary)
	if config.Logging.OutputPath != "stdout" && config.Logging.OutputPath != "stderr" {
		config.Logging.OutputPath = expandPath(config.Logging.OutputPath)
	}

	if err := Validate(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults registers every key so environment overrides apply even when
// the key is absent from the file
func setDefaults(v *viper.Viper, config *Config) {
	v.SetDefault("downloader.binary", config.Downloader.Binary)
	v.SetDefault("converter.binary", config.Converter.Binary)
	v.SetDefault("window.width", config.Window.Width)
	v.SetDefault("window.height", config.Window.Height)
	v.SetDefault("ui.language", config.UI.Language)
	v.SetDefault("ui.max_log_lines", config.UI.MaxLogLines)
	v.SetDefault("logging.level", config.Logging.Level)
	v.SetDefault("logging.format", config.Logging.Format)
	v.SetDefault("logging.output_path", config.Logging.OutputPath)
}

// Validate checks the configuration for values the app cannot run with
func Validate(config *Config) error {
	if strings.TrimSpace(config.Downloader.Binary) == "" {
		return fmt.Errorf("downloader: %w", ErrEmptyBinary)
	}
	if strings.TrimSpace(config.Converter.Binary) == "" {
		return fmt.Errorf("converter: %w", ErrEmptyBinary)
	}
	if config.Window.Width <= 0 || config.Window.Height <= 0 {
		return fmt.Errorf("%w: %vx%v", ErrWindowSize, config.Window.Width, config.Window.Height)
	}
	if config.UI.MaxLogLines < 1 {
		return ErrLogLines
	}
	if _, ok := GetLanguageOptions()[config.UI.Language]; !ok {
		return fmt.Errorf("%w: %q", ErrLanguage, config.UI.Language)
	}
	if _, err := zapcore.ParseLevel(config.Logging.Level); err != nil {
		return fmt.Errorf("%w: %q", ErrLoggingLevel, config.Logging.Level)
	}
	if config.Logging.Format != LogFormatJSON && config.Logging.Format != LogFormatConsole {
		return fmt.Errorf("%w: %q (want %s or %s)", ErrLogFormat, config.Logging.Format, LogFormatJSON, LogFormatConsole)
	}
	return nil
}

// expandPath expands environment variables and a leading ~ in paths
func expandPath(path string) string {
	path = os.ExpandEnv(path)

	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}

	return path
}
