package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/medsignup/pkg/config"
)

type testConfig struct {
	Addr    string        `env:"HTTP_ADDR" envDefault:":8080"`
	Timeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"5s"`
	Debug   bool          `env:"DEBUG"`
	Names   []string      `env:"NAMES" envSeparator:","`
}

type requiredConfig struct {
	Secret string `env:"SECRET,required"`
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load[testConfig](
		config.WithEnvFiles(),
		config.WithEnvironment(map[string]string{}),
	)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.False(t, cfg.Debug)
	assert.Empty(t, cfg.Names)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load[testConfig](
		config.WithEnvFiles(),
		config.WithEnvironment(map[string]string{
			"HTTP_ADDR":    ":9090",
			"HTTP_TIMEOUT": "1m",
			"DEBUG":        "true",
			"NAMES":        "a,b",
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, time.Minute, cfg.Timeout)
	assert.True(t, cfg.Debug)
	assert.Equal(t, []string{"a", "b"}, cfg.Names)
}

func TestLoad_EnvFile(t *testing.T) {
	t.Parallel()

	path := writeEnvFile(t, "HTTP_ADDR=:7070\nDEBUG=true\n")

	t.Run("file values are used", func(t *testing.T) {
		cfg, err := config.Load[testConfig](
			config.WithEnvFiles(path),
			config.WithEnvironment(map[string]string{}),
		)
		require.NoError(t, err)
		assert.Equal(t, ":7070", cfg.Addr)
		assert.True(t, cfg.Debug)
	})

	t.Run("environment wins over file", func(t *testing.T) {
		cfg, err := config.Load[testConfig](
			config.WithEnvFiles(path),
			config.WithEnvironment(map[string]string{"HTTP_ADDR": ":6060"}),
		)
		require.NoError(t, err)
		assert.Equal(t, ":6060", cfg.Addr)
		assert.True(t, cfg.Debug)
	})

	t.Run("first file wins", func(t *testing.T) {
		other := writeEnvFile(t, "HTTP_ADDR=:5050\n")
		cfg, err := config.Load[testConfig](
			config.WithEnvFiles(path, other),
			config.WithEnvironment(map[string]string{}),
		)
		require.NoError(t, err)
		assert.Equal(t, ":7070", cfg.Addr)
	})
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := config.Load[testConfig](
		config.WithEnvFiles(filepath.Join(t.TempDir(), "missing.env")),
		config.WithEnvironment(map[string]string{}),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrLoadEnvFile)
}

func TestLoad_Prefix(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load[testConfig](
		config.WithEnvFiles(),
		config.WithPrefix("SIGNUP_"),
		config.WithEnvironment(map[string]string{
			"SIGNUP_HTTP_ADDR": ":4040",
			"HTTP_ADDR":        ":1111",
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, ":4040", cfg.Addr)
}

func TestLoad_RequiredMissing(t *testing.T) {
	t.Parallel()

	_, err := config.Load[requiredConfig](
		config.WithEnvFiles(),
		config.WithEnvironment(map[string]string{}),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestMustLoad(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		config.MustLoad[requiredConfig](
			config.WithEnvFiles(),
			config.WithEnvironment(map[string]string{}),
		)
	})

	cfg := config.MustLoad[requiredConfig](
		config.WithEnvFiles(),
		config.WithEnvironment(map[string]string{"SECRET": "s3cr3t"}),
	)
	assert.Equal(t, "s3cr3t", cfg.Secret)
}
