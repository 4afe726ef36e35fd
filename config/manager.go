package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Manager reads and persists the yaml config file behind the config
// subcommands. It layers file values over defaults and refuses to write
// a file that would fail validation.
type Manager struct {
	v    *viper.Viper
	path string
}

// NewManager creates a manager for the config file at path. A missing
// file is not an error; defaults apply until the first Set.
func NewManager(path string) (*Manager, error) {
	m := &Manager{path: path}
	if err := m.reload(); err != nil {
		return nil, err
	}
	return m, nil
}

// reload rebuilds the viper state from defaults plus the file on disk.
func (m *Manager) reload() error {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")
	v.SetConfigFile(m.path)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read config: %w", err)
	}

	m.v = v
	return nil
}

// Get returns the value for a given key, or nil if the key does not exist.
func (m *Manager) Get(key string) any {
	return m.v.Get(key)
}

// HasKey returns true if the given key exists in the configuration.
func (m *Manager) HasKey(key string) bool {
	return m.v.IsSet(key)
}

// AllSettings returns all configuration values, defaults merged with any
// file-based overrides.
func (m *Manager) AllSettings() map[string]any {
	return m.v.AllSettings()
}

// ConfigPath returns the path to the configuration file.
func (m *Manager) ConfigPath() string {
	return m.path
}

// Set updates one key and rewrites the config file. The merged result is
// validated first; a rejected value never reaches disk and is rolled
// back from the in-memory state.
func (m *Manager) Set(key string, value any) error {
	m.v.Set(key, value)

	if err := m.check(); err != nil {
		if rerr := m.reload(); rerr != nil {
			return rerr
		}
		return err
	}

	return m.persist()
}

// Reset removes the config file and drops back to defaults.
func (m *Manager) Reset() error {
	if err := os.Remove(m.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove config: %w", err)
	}
	return m.reload()
}

func (m *Manager) check() error {
	var cfg Config
	if err := m.v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return validate(&cfg)
}

func (m *Manager) persist() error {
	if err := os.MkdirAll(filepath.Dir(m.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(m.v.AllSettings())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(m.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// ParseValue converts a raw command-line argument to the type the key
// expects. Booleans and integers are recognized; everything else stays a
// string. List values are intentionally unsupported: every setting in
// the schema is a flat scalar.
func ParseValue(value string) any {
	if value == "true" {
		return true
	}
	if value == "false" {
		return false
	}
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	return value
}
