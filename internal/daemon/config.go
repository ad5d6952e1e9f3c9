// Package daemon manages tasklist configuration and wires the widget to its
// storage backend and the HTTP server.
package daemon

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/tasklist-app/tasklist/internal/domain"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Config holds all tasklist configuration.
type Config struct {
	Storage   StorageConfig   `toml:"storage"`
	Tasks     TasksConfig     `toml:"tasks"`
	API       APIConfig       `toml:"api"`
	Logging   LoggingConfig   `toml:"logging"`
	Telemetry TelemetryConfig `toml:"telemetry"`
}

// StorageConfig selects where the task list is persisted.
type StorageConfig struct {
	Backend string `toml:"backend"`
	Dir     string `toml:"dir"`
	Key     string `toml:"key"`
}

// TasksConfig controls task creation and the initial view.
type TasksConfig struct {
	TimestampLayout string `toml:"timestamp_layout"`
	DefaultFilter   string `toml:"default_filter"`
}

// APIConfig controls the HTTP API server.
type APIConfig struct {
	Host        string   `toml:"host"`
	Port        int      `toml:"port"`
	CORSOrigins []string `toml:"cors_origins"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// TelemetryConfig controls the Prometheus endpoint.
type TelemetryConfig struct {
	Prometheus bool `toml:"prometheus"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	homeDir := tasklistHome()
	return Config{
		Storage: StorageConfig{
			Backend: BackendSQLite,
			Dir:     homeDir,
			Key:     "todos",
		},
		Tasks: TasksConfig{
			TimestampLayout: "2006-01-02T15:04:05Z07:00", // RFC 3339
			DefaultFilter:   string(domain.FilterAll),
		},
		API: APIConfig{
			Host:        "127.0.0.1",
			Port:        7171,
			CORSOrigins: []string{"*"},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Telemetry: TelemetryConfig{
			Prometheus: false,
		},
	}
}

// ConfigPath returns the config file location.
func ConfigPath() string {
	return filepath.Join(tasklistHome(), "config.toml")
}

// LoadConfig reads config from $TASKLIST_HOME/config.toml, falling back to defaults.
func LoadConfig() (Config, error) {
	return LoadConfigFile(ConfigPath())
}

// LoadConfigFile reads config from path over the defaults and validates it.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil // no config file yet, use defaults
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail later at startup.
func (c *Config) Validate() error {
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	switch c.Storage.Backend {
	case BackendSQLite, BackendFile, BackendMemory:
	default:
		return fmt.Errorf("storage.backend %q (want sqlite, file or memory)", c.Storage.Backend)
	}
	if c.Storage.Key == "" {
		c.Storage.Key = "todos"
	}
	if c.Storage.Dir == "" {
		c.Storage.Dir = tasklistHome()
	}
	if c.Tasks.DefaultFilter == "" {
		c.Tasks.DefaultFilter = string(domain.FilterAll)
	}
	if _, err := domain.ParseFilter(c.Tasks.DefaultFilter); err != nil {
		return fmt.Errorf("tasks.default_filter: %w", err)
	}
	if c.API.Port < 0 || c.API.Port > 65535 {
		return fmt.Errorf("api.port %d out of range", c.API.Port)
	}
	return nil
}

// Filter returns the configured initial filter.
func (c Config) Filter() domain.Filter {
	f, err := domain.ParseFilter(c.Tasks.DefaultFilter)
	if err != nil {
		return domain.FilterAll
	}
	return f
}

// SaveConfig writes the config to $TASKLIST_HOME/config.toml.
func SaveConfig(cfg Config) error {
	return SaveConfigFile(ConfigPath(), cfg)
}

// SaveConfigFile writes cfg as TOML to path.
func SaveConfigFile(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(cfg)
}

// tasklistHome returns the tasklist data directory.
func tasklistHome() string {
	if env := os.Getenv("TASKLIST_HOME"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".tasklist")
}

// Home is exported for use by other packages.
func Home() string {
	return tasklistHome()
}
