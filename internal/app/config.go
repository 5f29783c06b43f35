package app

import (
	"time"

	"github.com/dmitrymomot/medsignup/pkg/httpserver"
)

// Config is the process configuration, read from the environment and an optional .env file.
type Config struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Name string `env:"APP_NAME" envDefault:"medsignup"`
	// LogLevel overrides the environment default (debug in development, info elsewhere).
	LogLevel string `env:"LOG_LEVEL"`

	HTTP httpserver.Config

	// SpecializationsFile replaces the built-in specialization list when set.
	SpecializationsFile string `env:"SPECIALIZATIONS_FILE"`
	// StrictSpecialization rejects values missing from the catalog.
	StrictSpecialization bool `env:"STRICT_SPECIALIZATION" envDefault:"false"`

	RateLimit RateLimitConfig
}

// RateLimitConfig bounds POST requests per client address. A zero burst disables limiting.
type RateLimitConfig struct {
	Burst    int           `env:"RATE_LIMIT_BURST" envDefault:"60"`
	Refill   int           `env:"RATE_LIMIT_REFILL" envDefault:"1"`
	Interval time.Duration `env:"RATE_LIMIT_INTERVAL" envDefault:"1s"`
}
