package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is read when no WithEnvFiles option is given. A missing file is not an error.
const DefaultEnvFile = ".env"

type options struct {
	files         []string
	filesOptional bool
	environment   map[string]string
	prefix        string
}

// Option configures Load.
type Option func(*options)

// WithEnvFiles reads the given .env files instead of DefaultEnvFile.
// Every file must exist. When a key appears in several files the first one wins.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) {
		o.files = paths
		o.filesOptional = false
	}
}

// WithEnvironment replaces the process environment as the source of variables.
// Mostly useful in tests.
func WithEnvironment(vars map[string]string) Option {
	return func(o *options) {
		o.environment = vars
	}
}

// WithPrefix only considers variables starting with prefix, e.g. "SIGNUP_".
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// Load parses configuration into a new T using `env` struct tags.
//
// Values come from the process environment (or WithEnvironment) layered over
// the .env files; real environment variables always win over file values.
//
//	type HTTPConfig struct {
//		Addr string        `env:"HTTP_ADDR" envDefault:":8080"`
//		Read time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
//	}
//
//	cfg, err := config.Load[HTTPConfig]()
func Load[T any](opts ...Option) (T, error) {
	o := options{files: []string{DefaultEnvFile}, filesOptional: true}
	for _, opt := range opts {
		opt(&o)
	}

	var cfg T

	vars := make(map[string]string)
	for _, path := range o.files {
		fileVars, err := godotenv.Read(path)
		if err != nil {
			if o.filesOptional && errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return cfg, errors.Join(ErrLoadEnvFile, fmt.Errorf("%s: %w", path, err))
		}
		for k, v := range fileVars {
			if _, seen := vars[k]; !seen {
				vars[k] = v
			}
		}
	}

	if o.environment != nil {
		maps.Copy(vars, o.environment)
	} else {
		maps.Copy(vars, processEnv())
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars, Prefix: o.prefix}); err != nil {
		return cfg, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad works like Load but panics on failure. Use it for configuration
// the process cannot start without.
func MustLoad[T any](opts ...Option) T {
	cfg, err := Load[T](opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return cfg
}

func processEnv() map[string]string {
	out := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			out[k] = v
		}
	}
	return out
}
