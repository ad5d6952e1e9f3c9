package daemon

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tasklist-app/tasklist/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	t.Setenv("TASKLIST_HOME", "/tmp/tl-home")
	cfg := DefaultConfig()

	if cfg.API.Host != "127.0.0.1" {
		t.Errorf("API.Host = %q, want %q", cfg.API.Host, "127.0.0.1")
	}
	if cfg.API.Port != 7171 {
		t.Errorf("API.Port = %d, want %d", cfg.API.Port, 7171)
	}
	if cfg.Storage.Backend != BackendSQLite {
		t.Errorf("Storage.Backend = %q, want sqlite", cfg.Storage.Backend)
	}
	if cfg.Storage.Key != "todos" {
		t.Errorf("Storage.Key = %q, want todos", cfg.Storage.Key)
	}
	if cfg.Storage.Dir != "/tmp/tl-home" {
		t.Errorf("Storage.Dir = %q", cfg.Storage.Dir)
	}
	if cfg.Filter() != domain.FilterAll {
		t.Errorf("Filter() = %q, want all", cfg.Filter())
	}
}

func TestLoadConfigFile_Missing(t *testing.T) {
	cfg, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadConfigFile() error: %v", err)
	}
	if cfg.API.Port != 7171 {
		t.Errorf("API.Port = %d, want default", cfg.API.Port)
	}
}

func TestLoadConfigFile_Overlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	os.WriteFile(path, []byte(`
[storage]
backend = "File"

[tasks]
default_filter = "active"
timestamp_layout = "2006-01-02"

[api]
port = 9000
`), 0600)

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile() error: %v", err)
	}
	if cfg.Storage.Backend != BackendFile {
		t.Errorf("Storage.Backend = %q, want file", cfg.Storage.Backend)
	}
	if cfg.Filter() != domain.FilterActive {
		t.Errorf("Filter() = %q, want active", cfg.Filter())
	}
	if cfg.Tasks.TimestampLayout != "2006-01-02" {
		t.Errorf("TimestampLayout = %q", cfg.Tasks.TimestampLayout)
	}
	if cfg.API.Port != 9000 || cfg.API.Host != "127.0.0.1" {
		t.Errorf("API = %+v", cfg.API)
	}
	if cfg.Storage.Key != "todos" {
		t.Errorf("Storage.Key = %q, default should survive overlay", cfg.Storage.Key)
	}
}

func TestLoadConfigFile_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"syntax", "[storage\n", "parse config"},
		{"backend", "[storage]\nbackend = \"redis\"\n", "storage.backend"},
		{"filter", "[tasks]\ndefault_filter = \"done\"\n", "default_filter"},
		{"port", "[api]\nport = 70000\n", "api.port"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			os.WriteFile(path, []byte(tt.body), 0600)

			_, err := LoadConfigFile(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestSaveConfigFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	cfg := DefaultConfig()
	cfg.API.Port = 8123
	cfg.Telemetry.Prometheus = true

	if err := SaveConfigFile(path, cfg); err != nil {
		t.Fatalf("SaveConfigFile() error: %v", err)
	}
	got, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile() error: %v", err)
	}
	if got.API.Port != 8123 || !got.Telemetry.Prometheus {
		t.Errorf("round trip = %+v", got)
	}
}

func TestHome_Env(t *testing.T) {
	t.Setenv("TASKLIST_HOME", "/x/y")
	if Home() != "/x/y" {
		t.Errorf("Home() = %q", Home())
	}
	if ConfigPath() != filepath.Join("/x/y", "config.toml") {
		t.Errorf("ConfigPath() = %q", ConfigPath())
	}
}
