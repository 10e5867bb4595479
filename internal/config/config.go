// Package config handles the paperfmt configuration file and environment
// overrides. Only the CLI layer touches this package; the formatting core
// receives its settings explicitly.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the user configuration stored in
// $XDG_CONFIG_HOME/paperfmt/config.yml.
type Config struct {
	// DefaultStyle is used when --style is not given (e.g. "mla").
	DefaultStyle string `yaml:"default_style,omitempty"`
	// SortAuthors orders bibliography author groups alphabetically.
	SortAuthors bool `yaml:"sort_authors,omitempty"`
	// Assist configures the optional language-model reviewer.
	Assist AssistConfig `yaml:"assist,omitempty"`
}

// AssistConfig configures the language-model assistant endpoint.
type AssistConfig struct {
	BaseURL string `yaml:"base_url,omitempty"`
	APIKey  string `yaml:"api_key,omitempty"`
	Model   string `yaml:"model,omitempty"`
}

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "paperfmt"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"
)

// Path returns the path to the config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/paperfmt/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// Load reads the configuration file. A missing file yields an empty config,
// not an error.
func Load() (*Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads a configuration file from an explicit path.
func LoadFrom(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// ApplyEnv overlays environment variables onto the config. Called by the
// CLI after godotenv has had a chance to populate the environment.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("PAPERFMT_STYLE"); v != "" {
		c.DefaultStyle = v
	}
	if v := os.Getenv("PAPERFMT_API_KEY"); v != "" {
		c.Assist.APIKey = v
	} else if v := os.Getenv("OPENAI_API_KEY"); v != "" && c.Assist.APIKey == "" {
		c.Assist.APIKey = v
	}
	if v := os.Getenv("PAPERFMT_ASSIST_URL"); v != "" {
		c.Assist.BaseURL = v
	}
	if v := os.Getenv("PAPERFMT_ASSIST_MODEL"); v != "" {
		c.Assist.Model = v
	}
}
