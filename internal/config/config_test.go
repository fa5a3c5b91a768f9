package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/PauloHenriqueJr/storyspark-sub002/internal/constants"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Database != constants.DefaultConfigPath {
		t.Errorf("Database = %q, want default", cfg.Database)
	}
	if cfg.DefaultView != string(constants.ViewMonth) {
		t.Errorf("DefaultView = %q, want month", cfg.DefaultView)
	}
	if cfg.DefaultPlatform != constants.PlatformAll {
		t.Errorf("DefaultPlatform = %q, want all", cfg.DefaultPlatform)
	}
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "database: /tmp/cal.db\ndefault_view: week\ndefault_platform: instagram\ndebug: true\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Database != "/tmp/cal.db" {
		t.Errorf("Database = %q", cfg.Database)
	}
	if cfg.DefaultView != "week" {
		t.Errorf("DefaultView = %q", cfg.DefaultView)
	}
	if cfg.DefaultPlatform != "instagram" {
		t.Errorf("DefaultPlatform = %q", cfg.DefaultPlatform)
	}
	if !cfg.Debug {
		t.Error("Debug = false, want true")
	}
}

func TestLoadEmptyFieldsFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("debug: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DefaultView != string(constants.ViewMonth) {
		t.Errorf("DefaultView = %q, want month fallback", cfg.DefaultView)
	}
}

func TestLoadBrokenFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\n\t- nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() on broken YAML should error")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir")
	}

	got, err := ExpandPath("~/foo/bar.db")
	if err != nil {
		t.Fatalf("ExpandPath() error = %v", err)
	}
	if got != filepath.Join(home, "foo", "bar.db") {
		t.Errorf("ExpandPath() = %q", got)
	}

	got, err = ExpandPath("/abs/path.db")
	if err != nil {
		t.Fatalf("ExpandPath() error = %v", err)
	}
	if got != "/abs/path.db" {
		t.Errorf("ExpandPath() changed absolute path: %q", got)
	}
}
