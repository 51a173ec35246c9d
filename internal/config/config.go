// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Position strategies.
const (
	StrategyHistory = "history"
	StrategyMemory  = "memory"
)

// Step key modes.
const (
	KeysIndex = "index"
	KeysNamed = "named"
)

// Config holds all configuration values for stepform.
type Config struct {
	Strategy string `mapstructure:"strategy" yaml:"strategy"`
	Keys     string `mapstructure:"keys" yaml:"keys"`
	SeedFile string `mapstructure:"seed_file" yaml:"seed_file"`
	Output   string `mapstructure:"output" yaml:"output"`
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	LogFile  string `mapstructure:"log_file" yaml:"log_file"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Strategy: StrategyHistory,
		Keys:     KeysIndex,
		LogLevel: "info",
	}
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults
//
// Load does not validate; callers apply their flags first and then call
// Validate on the result.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("stepform")

	def := Default()
	v.SetDefault("strategy", def.Strategy)
	v.SetDefault("keys", def.Keys)
	v.SetDefault("seed_file", "")
	v.SetDefault("output", "")
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_file", "")

	v.SetEnvPrefix("STEPFORM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, key := range []string{"strategy", "keys", "seed_file", "output", "log_level", "log_file"} {
		if err := v.BindEnv(key, "STEPFORM_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch c.Strategy {
	case StrategyHistory, StrategyMemory:
	default:
		return fmt.Errorf("invalid strategy %q (want %s or %s)", c.Strategy, StrategyHistory, StrategyMemory)
	}
	switch c.Keys {
	case KeysIndex, KeysNamed:
	default:
		return fmt.Errorf("invalid keys %q (want %s or %s)", c.Keys, KeysIndex, KeysNamed)
	}
	return nil
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/stepform/stepform.yml or $XDG_CONFIG_HOME/stepform/stepform.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "stepform", "stepform.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "stepform", "stepform.yml")
}

// ProjectPath returns the project-local config path.
func ProjectPath() string {
	return "stepform.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return write(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
