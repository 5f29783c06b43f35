package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrLoadEnvFile is returned when an explicitly requested .env file cannot be read.
	ErrLoadEnvFile = errors.New("failed to load env file")
)
