// Package config resolves banban's configuration from defaults, the YAML
// config file, .env files and BANBAN_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/example/banban/internal/db"
)

// Log formats understood by the logging package.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// EnvFiles are the dotenv files loaded from the working directory.
var EnvFiles = []string{".env", ".env.local"}

// Config represents the banban configuration.
type Config struct {
	DBPath    string `yaml:"db_path" env:"BANBAN_DB_PATH"`
	LogLevel  string `yaml:"log_level" env:"BANBAN_LOG_LEVEL"`
	LogFormat string `yaml:"log_format" env:"BANBAN_LOG_FORMAT"`
}

// Default returns the configuration used when nothing overrides it.
func Default(home string) *Config {
	return &Config{
		DBPath:    db.DefaultPath(home),
		LogLevel:  "warn",
		LogFormat: FormatText,
	}
}

// Path returns the config file path under home.
func Path(home string) string {
	return filepath.Join(home, ".banban", "config.yaml")
}

// LoadConfig resolves the configuration for home. A missing config file or
// missing env files are not errors.
func LoadConfig(home string, envFiles ...string) (*Config, error) {
	cfg := Default(home)

	data, err := os.ReadFile(Path(home))
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if _, err := LoadEnv(envFiles); err != nil {
		return nil, fmt.Errorf("failed to load env files: %w", err)
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEnv loads the env files that exist and returns how many were loaded.
// Variables already set in the process environment win.
func LoadEnv(envFiles []string) (int, error) {
	existing := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			existing = append(existing, file)
		}
	}

	if len(existing) == 0 {
		return 0, nil
	}
	return len(existing), godotenv.Load(existing...)
}

// Validate checks the log settings and database path.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return errors.New("db_path cannot be empty")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}
	if c.LogFormat != FormatText && c.LogFormat != FormatJSON {
		return fmt.Errorf("invalid log_format %q: must be %s or %s", c.LogFormat, FormatText, FormatJSON)
	}
	return nil
}

// SaveConfig writes config.yaml under home.
func SaveConfig(home string, cfg *Config) error {
	path := Path(home)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
