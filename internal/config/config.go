// Package config loads application settings from the environment.
// Model provider settings live separately in internal/llm.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the application configuration.
type Config struct {
	// DBPath overrides the database location. Empty means the default
	// XDG data path.
	DBPath string `env:"STUDYPLAN_DB"`

	// PassThreshold is the minimum concluding assessment score to pass.
	PassThreshold int `env:"STUDYPLAN_PASS_THRESHOLD" envDefault:"70"`

	// QuestionTarget is how many graded answers conclude an assessment.
	QuestionTarget int `env:"STUDYPLAN_QUESTION_TARGET" envDefault:"5"`

	// SessionTTL is how long inactive assessment sessions survive.
	SessionTTL time.Duration `env:"STUDYPLAN_SESSION_TTL" envDefault:"24h"`
}

// Load reads configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	if c.PassThreshold < 0 || c.PassThreshold > 100 {
		return fmt.Errorf("pass threshold %d out of range [0, 100]", c.PassThreshold)
	}
	if c.QuestionTarget < 1 {
		return fmt.Errorf("question target %d must be at least 1", c.QuestionTarget)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("session ttl %s must be positive", c.SessionTTL)
	}
	return nil
}
