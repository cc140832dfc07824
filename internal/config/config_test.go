package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xvierd/tomato/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Timer.WorkMinutes != 25 {
		t.Errorf("expected default work minutes 25, got %d", cfg.Timer.WorkMinutes)
	}
	if cfg.Timer.BreakMinutes != 5 {
		t.Errorf("expected default break minutes 5, got %d", cfg.Timer.BreakMinutes)
	}
	if !cfg.Notifications.Enabled || !cfg.Notifications.Sound {
		t.Error("expected notifications and sound enabled by default")
	}
}

func TestLoad_CreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tomato", "config.toml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not created: %v", err)
	}
	if cfg.Timer.WorkMinutes != 25 || cfg.Timer.BreakMinutes != 5 {
		t.Errorf("Load() timer = %+v, want 25/5", cfg.Timer)
	}
	if filepath.Base(GetDBPath(cfg)) != "tomato.db" {
		t.Errorf("GetDBPath() = %q", GetDBPath(cfg))
	}
}

func TestLoad_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[timer]
work_minutes = 50
break_minutes = 10

[notifications]
enabled = false

[storage]
data_dir = "` + filepath.ToSlash(dir) + `"

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Timer.WorkMinutes != 50 || cfg.Timer.BreakMinutes != 10 {
		t.Errorf("timer = %+v, want 50/10", cfg.Timer)
	}
	if cfg.Notifications.Enabled {
		t.Error("notifications should be disabled")
	}
	if !cfg.Notifications.Sound {
		t.Error("sound should fall back to its default")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Storage.DataDir != filepath.ToSlash(dir) {
		t.Errorf("data dir = %q, want %q", cfg.Storage.DataDir, dir)
	}
	if cfg.Theme.IconApp != DefaultThemeConfig().IconApp {
		t.Errorf("theme icon = %q, want default", cfg.Theme.IconApp)
	}
}

func TestLoad_RejectsNegativeMinutes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[timer]\nwork_minutes = -1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, domain.ErrInvalidDuration) {
		t.Errorf("Load() error = %v, want ErrInvalidDuration", err)
	}
}

func TestLoad_RejectsOverlongMinutes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[timer]\nbreak_minutes = 200000000\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, domain.ErrInvalidDuration) {
		t.Errorf("Load() error = %v, want ErrInvalidDuration", err)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"", filepath.Join(home, ".tomato")},
		{"~/.tomato", filepath.Join(home, ".tomato")},
		{"/var/lib/tomato", "/var/lib/tomato"},
	}
	for _, tt := range tests {
		got, err := expandHome(tt.in)
		if err != nil {
			t.Fatalf("expandHome(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("expandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
