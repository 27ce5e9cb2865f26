// Package config assembles process configuration at startup: an optional
// YAML settings file, environment overrides, and layered resolution of the
// one required secret. Business logic only ever sees the resolved values.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the settings file consulted when MEALPLANNER_CONFIG is
// not set. A missing default file is not an error.
const DefaultPath = "mealplanner.yaml"

// Config holds the resolved process configuration.
type Config struct {
	Addr        string `yaml:"addr"`
	WebDir      string `yaml:"webDir"`
	Model       string `yaml:"model"`
	BaseURL     string `yaml:"baseUrl"`
	DatabaseURL string `yaml:"databaseUrl"`

	// APIKey is resolved from the secret layering, never from the
	// settings file.
	APIKey string `yaml:"-"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:   ":8080",
		WebDir: "web",
	}
}

// Load assembles the configuration: `.env` (if present), then the YAML
// settings file, then environment overrides, then the API credential.
// A missing credential is an error; main treats it as fatal.
func Load() (Config, error) {
	// Local development convenience; absent files are normal in
	// deployment.
	_ = godotenv.Load()

	cfg := Default()

	path := os.Getenv("MEALPLANNER_CONFIG")
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	if b, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if explicit || !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	applyEnv(&cfg)

	key, err := resolveAPIKey()
	if err != nil {
		return Config{}, err
	}
	cfg.APIKey = key
	return cfg, nil
}

func applyEnv(cfg *Config) {
	overrideEnv(&cfg.Addr, "ADDR")
	overrideEnv(&cfg.WebDir, "WEB_DIR")
	overrideEnv(&cfg.Model, "OPENAI_MODEL")
	overrideEnv(&cfg.BaseURL, "OPENAI_BASE_URL")
	overrideEnv(&cfg.DatabaseURL, "DATABASE_URL")
}

func overrideEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// resolveAPIKey prefers a deployment-managed secret file and falls back to
// the environment.
func resolveAPIKey() (string, error) {
	if path := os.Getenv("OPENAI_API_KEY_FILE"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read api key file: %w", err)
		}
		key := strings.TrimSpace(string(b))
		if key == "" {
			return "", fmt.Errorf("api key file %s is empty", path)
		}
		return key, nil
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key, nil
	}
	return "", errors.New("OPENAI_API_KEY not found in secret file or environment")
}
