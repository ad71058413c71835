package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if Exists() {
		t.Fatal("Exists() = true in empty config dir")
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("Load = %+v, want defaults %+v", cfg, DefaultConfig())
	}
	if cfg.Storage.Path != "account.txt" {
		t.Fatalf("default path = %q, want account.txt", cfg.Storage.Path)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	want := DefaultConfig()
	want.Storage.Path = "/var/lib/cbank/balance.db"
	want.Storage.Backend = "sqlite"
	want.Storage.BackupCorrupt = true
	want.Appearance.Theme = "tokyo-night"
	want.Appearance.Currency = "EUR"

	if err := Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if ConfigPath() != filepath.Join(xdg, "cbank", "config.toml") {
		t.Fatalf("ConfigPath = %q", ConfigPath())
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Fatalf("Load = %+v, want %+v", got, want)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	dir := filepath.Join(xdg, "cbank")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := "[appearance]\ntheme = \"terminal\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Appearance.Theme != "terminal" {
		t.Fatalf("theme = %q, want terminal", cfg.Appearance.Theme)
	}
	if cfg.Appearance.Currency != "USD" || cfg.Storage.Path != "account.txt" {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	dir := filepath.Join(xdg, "cbank")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[storage\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err == nil {
		t.Fatal("Load of invalid TOML returned nil error")
	}
	if cfg != DefaultConfig() {
		t.Fatalf("Load on error = %+v, want defaults", cfg)
	}
}

func TestBalancePathEnvOverride(t *testing.T) {
	cfg := DefaultConfig()

	t.Setenv(EnvBalanceFile, "")
	if got := BalancePath(cfg); got != "account.txt" {
		t.Fatalf("BalancePath = %q, want account.txt", got)
	}

	t.Setenv(EnvBalanceFile, "/tmp/other.txt")
	if got := BalancePath(cfg); got != "/tmp/other.txt" {
		t.Fatalf("BalancePath = %q, want env value", got)
	}
}

func TestBalancePathSQLiteDefault(t *testing.T) {
	t.Setenv(EnvBalanceFile, "")
	cfg := DefaultConfig()
	cfg.Storage.Backend = "sqlite"
	if got := BalancePath(cfg); got != DefaultSQLitePath {
		t.Fatalf("BalancePath = %q, want %q", got, DefaultSQLitePath)
	}

	cfg.Storage.Path = "/data/bank.sqlite"
	if got := BalancePath(cfg); got != "/data/bank.sqlite" {
		t.Fatalf("BalancePath = %q, want configured path", got)
	}

	cfg.Storage.Path = DefaultPath
	cfg.Storage.Backend = "file"
	if got := BalancePath(cfg); got != DefaultPath {
		t.Fatalf("BalancePath = %q, want %q", got, DefaultPath)
	}
}
