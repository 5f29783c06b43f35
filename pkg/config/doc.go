// Package config loads application configuration from environment variables
// into typed structs.
//
// It combines github.com/joho/godotenv, for optional .env files, with
// github.com/caarlos0/env/v11, which maps variables onto struct fields via
// `env` and `envDefault` tags. Load never mutates the process environment:
// .env values are read into a map and layered under the real environment.
//
//	type Config struct {
//		Addr     string `env:"HTTP_ADDR" envDefault:":8080"`
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	cfg := config.MustLoad[Config]()
//
// Errors wrap ErrParsingConfig or ErrLoadEnvFile and can be matched with errors.Is.
package config
