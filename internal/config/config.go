package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/theirongolddev/outgo/internal/model"
)

// Config holds all outgo configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DataFile   string   `toml:"data_file,omitempty"`
	Categories []string `toml:"categories,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "outgo")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "outgo")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// DataPath returns the expense file location: the command-line
// override, the OUTGO_DATA_FILE environment variable, or the
// configured path, in that order, falling back to the default.
func DataPath(cfg Config, override string) string {
	if override != "" {
		return override
	}
	if env := os.Getenv("OUTGO_DATA_FILE"); env != "" {
		return env
	}
	if cfg.General.DataFile != "" {
		return cfg.General.DataFile
	}
	return DefaultDataPath()
}

// DefaultDataPath returns the XDG-compliant default location for the
// expense file.
func DefaultDataPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "outgo", "expenses.csv")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "outgo", "expenses.csv")
}

// GetCategories returns the configured category list, or the
// suggested defaults when none are configured.
func GetCategories(cfg Config) []string {
	if len(cfg.General.Categories) > 0 {
		return cfg.General.Categories
	}
	return model.SuggestedCategories
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
