package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration.
type Config struct {
	// GeminiAPIKey enables the narrator. Without it, recaps are static.
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"DOLL_GEMINI_MODEL" envDefault:"gemini-2.5-flash"`

	// CatalogPath overrides the embedded catalog with a YAML file.
	CatalogPath string `env:"DOLL_CATALOG_PATH"`

	// Seed fixes the random source; 0 seeds from crypto/rand.
	Seed int64 `env:"DOLL_SEED"`

	MaxDollItems  int `env:"DOLL_MAX_DOLL_ITEMS" envDefault:"4"`
	NightItems    int `env:"DOLL_NIGHT_ITEMS"    envDefault:"8"`
	NightTasks    int `env:"DOLL_NIGHT_TASKS"    envDefault:"10"`
	VictoryPoints int `env:"DOLL_VICTORY_POINTS" envDefault:"70"`

	LogFile string `env:"DOLL_LOG_FILE" envDefault:"debug.log"`
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects non-positive caps and thresholds.
func (c *Config) Validate() error {
	checks := []struct {
		name  string
		value int
	}{
		{"DOLL_MAX_DOLL_ITEMS", c.MaxDollItems},
		{"DOLL_NIGHT_ITEMS", c.NightItems},
		{"DOLL_NIGHT_TASKS", c.NightTasks},
		{"DOLL_VICTORY_POINTS", c.VictoryPoints},
	}
	for _, check := range checks {
		if check.value <= 0 {
			return fmt.Errorf("%s must be positive, got %d", check.name, check.value)
		}
	}
	return nil
}
