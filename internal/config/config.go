// Package config loads and saves cbank settings from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// EnvBalanceFile overrides the configured balance path.
const EnvBalanceFile = "CBANK_FILE"

// Default balance locations. The sqlite backend gets its own so it never
// opens a text balance file as a database.
const (
	DefaultPath       = "account.txt"
	DefaultSQLitePath = "account.db"
)

// Config holds all cbank configuration.
type Config struct {
	Storage    StorageConfig    `toml:"storage"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// StorageConfig controls where the balance lives.
type StorageConfig struct {
	Path          string `toml:"path"`
	Backend       string `toml:"backend"`
	BackupCorrupt bool   `toml:"backup_corrupt"`
}

// AppearanceConfig holds theme and currency display settings.
type AppearanceConfig struct {
	Theme    string `toml:"theme"`
	Currency string `toml:"currency"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			Path:    DefaultPath,
			Backend: "file",
		},
		Appearance: AppearanceConfig{
			Theme:    "flexoki-dark",
			Currency: "USD",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "cbank")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "cbank")
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
		return DefaultConfig(), fmt.Errorf("parsing config: %w", err)
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

// BalancePath returns the balance path from the environment or config, in that order.
// The sqlite backend with an unset or default path uses DefaultSQLitePath.
func BalancePath(cfg Config) string {
	if p := os.Getenv(EnvBalanceFile); p != "" {
		return p
	}
	return StoragePath(cfg.Storage.Backend, cfg.Storage.Path)
}

// StoragePath maps the default text path to DefaultSQLitePath for the
// sqlite backend and returns any other path unchanged.
func StoragePath(backend, path string) string {
	if backend == "sqlite" && (path == "" || path == DefaultPath) {
		return DefaultSQLitePath
	}
	return path
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
