// Package config provides configuration management for debugsink using Viper.
package config

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/thoreinstein/debugsink/internal/debug"
	"github.com/thoreinstein/debugsink/internal/errors"
	"github.com/thoreinstein/debugsink/internal/paths"
	"github.com/thoreinstein/debugsink/pkg/fileutil"
)

// EnvPrefix prefixes every environment variable read by Viper.
const EnvPrefix = "DEBUGSINK"

// Configuration keys.
const (
	KeyDebugEnabled = "debug.enabled"
	KeyDebugLogFile = "debug.logfile"
)

// Config represents the top-level configuration structure.
type Config struct {
	Debug DebugConfig `mapstructure:"debug" yaml:"debug" toml:"debug"`
}

// DebugConfig holds the debug sink settings.
type DebugConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled" toml:"enabled"`
	LogFile string `mapstructure:"logfile" yaml:"logfile,omitempty" toml:"logfile,omitempty"`
}

// Default returns a configuration with the sink disabled.
func Default() *Config {
	return &Config{}
}

// Settings converts the configuration into sink startup settings.
func (c *Config) Settings() debug.Settings {
	return debug.Settings{
		Enabled: c.Debug.Enabled,
		LogFile: c.Debug.LogFile,
	}
}

// ParseEnabled reports whether v is "true", ignoring case.
// Every other value, including "1" and "yes", disables the sink.
func ParseEnabled(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), "true")
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	// DEBUGSINK_DEBUG_ENABLED, DEBUGSINK_DEBUG_LOGFILE
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(KeyDebugEnabled, "false")
	viper.SetDefault(KeyDebugLogFile, "")
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file; a missing file then
// matches errors.ErrNotFound. Validation failures match errors.ErrInvalidConfig.
// If path is empty, it searches in the default locations and falls back to
// defaults and environment variables when no file is found.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
		switch {
		case missing && path == "":
			// Implicit load without a file: defaults and env only.
		case missing:
			return nil, errors.Mark(errors.Wrapf(err, "config file not found at %s", path), errors.ErrNotFound)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	// Read enabled as a string so only "true" enables, whatever the source.
	cfg := &Config{
		Debug: DebugConfig{
			Enabled: ParseEnabled(viper.GetString(KeyDebugEnabled)),
			LogFile: viper.GetString(KeyDebugLogFile),
		},
	}

	if errs := Validate(cfg); len(errs) > 0 {
		return nil, errors.Mark(errors.Wrap(errs[0], "validating config"), errors.ErrInvalidConfig)
	}

	return cfg, nil
}

// Save writes cfg to path atomically. Files ending in .toml are written as
// TOML, everything else as YAML.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	if err := paths.EnsureDir(filepath.Dir(path), 0); err != nil {
		return err
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return errors.Wrap(fileutil.AtomicWriteTOML(path, cfg), "saving config")
	}
	return errors.Wrap(fileutil.AtomicWriteYAML(path, cfg), "saving config")
}
