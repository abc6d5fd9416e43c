package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Chat    ChatConfig    `mapstructure:"chat"`
	History HistoryConfig `mapstructure:"history"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds recruitment backend connection settings
type APIConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// ChatConfig holds chat session settings
type ChatConfig struct {
	Model        string `mapstructure:"model"`
	SystemPrompt string `mapstructure:"system_prompt"`
	Role         string `mapstructure:"role"` // candidate or recruiter, set at login
}

// HistoryConfig holds transcript persistence settings
type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	File    string `mapstructure:"file"`
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	LogFile string `mapstructure:"log_file"`
	Persist bool   `mapstructure:"persist"`
	Level   string `mapstructure:"level"`
}

var global *Config

// SetDefaults registers default values on viper. Called before any config
// read so a missing settings file still yields a usable Config.
func SetDefaults() {
	viper.SetDefault("api.url", "http://localhost:8000/api")
	viper.SetDefault("api.timeout", "120s")

	viper.SetDefault("chat.model", "c1/anthropic/claude-sonnet-4/v-20250815")
	viper.SetDefault("chat.system_prompt", "")
	viper.SetDefault("chat.role", "candidate")

	viper.SetDefault("history.enabled", true)
	viper.SetDefault("history.file", "history.json")

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.log_file", "hireterm.log")
	viper.SetDefault("logging.persist", false)
}

// Load unmarshals the current viper state into the global Config
func Load() (*Config, error) {
	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	global = cfg
	return cfg, nil
}

// Get returns the global configuration, loading it on first use
func Get() *Config {
	if global == nil {
		SetDefaults()
		cfg, err := Load()
		if err != nil {
			cfg = &Config{}
		}
		global = cfg
	}
	return global
}

// Set replaces the global configuration (useful for testing)
func Set(cfg *Config) {
	global = cfg
}

// Timeout returns the API timeout, falling back to a sane default when the
// settings file carries a zero or negative value.
func (a APIConfig) TimeoutOrDefault() time.Duration {
	if a.Timeout <= 0 {
		return 120 * time.Second
	}
	return a.Timeout
}
