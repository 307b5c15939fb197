package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Manager reads and persists the configuration file used by `rewind config`.
type Manager struct {
	v          *viper.Viper
	configPath string
}

// NewManager creates a new configuration manager.
// It initializes with defaults and reads the config file if it exists.
func NewManager(configPath string) (*Manager, error) {
	m := &Manager{configPath: configPath}
	m.v = m.fresh()

	if err := m.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return m, nil
}

func (m *Manager) fresh() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")
	v.SetConfigFile(m.configPath)
	return v
}

// Get returns the value for a given key, or nil if the key does not exist.
func (m *Manager) Get(key string) interface{} {
	return m.v.Get(key)
}

// Set validates and persists a configuration value.
// Unknown keys and values that fail validation are rejected without
// touching the file.
func (m *Manager) Set(key string, value interface{}) error {
	if !m.v.IsSet(key) {
		return fmt.Errorf("unknown config key: %s", key)
	}

	m.v.Set(key, value)

	var cfg Config
	if err := m.v.Unmarshal(&cfg); err != nil {
		m.v = m.reload()
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	if err := validate(&cfg); err != nil {
		m.v = m.reload()
		return err
	}

	if err := os.MkdirAll(filepath.Dir(m.configPath), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(m.v.AllSettings())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// reload discards in-memory overrides and rereads the file.
func (m *Manager) reload() *viper.Viper {
	v := m.fresh()
	_ = v.ReadInConfig()
	return v
}

// Reset removes the config file, effectively resetting to defaults.
func (m *Manager) Reset() error {
	if err := os.Remove(m.configPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove config: %w", err)
	}

	m.v = m.fresh()
	return nil
}

// AllSettings returns all configuration values as a map.
// This includes defaults merged with any file-based overrides.
func (m *Manager) AllSettings() map[string]interface{} {
	return m.v.AllSettings()
}

// ConfigPath returns the path to the configuration file.
func (m *Manager) ConfigPath() string {
	return m.configPath
}

// ParseValue parses a command-line string into a config value.
// It handles booleans and bracketed lists; everything else, including
// durations such as "500ms", stays a string for viper to decode.
func ParseValue(value string) interface{} {
	switch value {
	case "true":
		return true
	case "false":
		return false
	}
	if strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]") {
		inner := strings.TrimPrefix(strings.TrimSuffix(value, "]"), "[")
		parts := strings.Split(inner, ",")
		for i, p := range parts {
			parts[i] = strings.TrimSpace(p)
		}
		return parts
	}
	return value
}
