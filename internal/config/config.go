// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	Import  ImportConfig  `toml:"import"`
	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
	Log     LogConfig     `toml:"log"`
}

// ImportConfig holds spreadsheet import settings.
type ImportConfig struct {
	Sheet string `toml:"sheet"` // worksheet name, empty for the first one
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds TUI and output settings.
type UIConfig struct {
	Theme   string `toml:"theme"` // "dark" or "light"
	NoColor bool   `toml:"no_color"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Debug bool   `toml:"debug"`
	File  string `toml:"file"`
}

// Themes lists the accepted values for ui.theme.
var Themes = []string{"dark", "light"}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme: "dark",
		},
		Log: LogConfig{
			File: "classgrid-debug.log",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "classgrid.db"
	}
	return filepath.Join(home, ".local", "share", "classgrid", "classgrid.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "classgrid", "config.toml")
}

// Path returns the config file in use: $CLASSGRID_CONFIG when set, the
// default path otherwise.
func Path() string {
	if v := os.Getenv("CLASSGRID_CONFIG"); v != "" {
		return expandPath(v)
	}
	return DefaultConfigPath()
}

// Load loads configuration from Path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(Path())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)
	cfg.Log.File = expandPath(cfg.Log.File)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CLASSGRID_SHEET"); v != "" {
		cfg.Import.Sheet = v
	}
	if v := os.Getenv("CLASSGRID_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("CLASSGRID_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("NO_COLOR"); v != "" {
		cfg.UI.NoColor = true
	}
	if v := os.Getenv("CLASSGRID_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Log.Debug = b
		}
	}
	if v := os.Getenv("CLASSGRID_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	if !isValidTheme(c.UI.Theme) {
		return fmt.Errorf("invalid theme: %s (valid: %s)", c.UI.Theme, strings.Join(Themes, ", "))
	}
	if c.Log.Debug && c.Log.File == "" {
		return errors.New("log file must be set when debug logging is enabled")
	}
	return nil
}

func isValidTheme(name string) bool {
	for _, t := range Themes {
		if strings.EqualFold(t, name) {
			return true
		}
	}
	return false
}

// Save writes the configuration to Path.
func (c *Config) Save() error {
	return c.SaveTo(Path())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
