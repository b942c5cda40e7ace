package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CONFIG", "")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "QR-Code-Decoder/1.0", cfg.UserAgent)
	assert.Equal(t, int64(20<<20), cfg.MaxImageBytes)
	assert.Equal(t, int64(16_000_000), cfg.MaxPixels)
	assert.Zero(t, cfg.RateLimit)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.EnableHTTPS)
	assert.Empty(t, cfg.GRPCAddress)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("FETCH_TIMEOUT", "3s")
	t.Setenv("RATE_LIMIT", "2.5")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.Addr())
	assert.Equal(t, 3*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 2.5, cfg.RateLimit)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load([]string{"-p", "9090", "-l", "debug", "-timeout", "1500ms", "-g", ":9091"})
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 1500*time.Millisecond, cfg.FetchTimeout)
	assert.Equal(t, ":9091", cfg.GRPCAddress)
}

func TestLoad_MaxPixelsEnv(t *testing.T) {
	t.Setenv("MAX_IMAGE_PIXELS", "250000")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, int64(250_000), cfg.MaxPixels)

	t.Setenv("MAX_IMAGE_PIXELS", "-5")
	_, err = Load(nil)
	assert.Error(t, err)
}

func TestLoad_ServerAddressWins(t *testing.T) {
	cfg, err := Load([]string{"-a", "127.0.0.1:7000", "-p", "1"})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:7000", cfg.Addr())
}

func TestLoad_JSONFile(t *testing.T) {
	t.Setenv("PORT", "")
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port":"4000","fetch_timeout":"7s","user_agent":"test-agent"}`), 0o644))

	cfg, err := Load([]string{"-config", path})
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, 7*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "test-agent", cfg.UserAgent)
}

func TestLoad_EnvOverridesJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port":"4000"}`), 0o644))
	t.Setenv("CONFIG", path)
	t.Setenv("PORT", "5000")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
}

func TestLoad_MissingJSONFile(t *testing.T) {
	_, err := Load([]string{"-c", filepath.Join(t.TempDir(), "nope.json")})
	assert.Error(t, err)
}

func TestLoad_BadFlag(t *testing.T) {
	_, err := Load([]string{"-unknown"})
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:          "3000",
			FetchTimeout:  time.Second,
			MaxImageBytes: 1,
			MaxPixels:     1,
			LogLevel:      "info",
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Port = "http" }},
		{"port out of range", func(c *Config) { c.Port = "70000" }},
		{"zero timeout", func(c *Config) { c.FetchTimeout = 0 }},
		{"zero max bytes", func(c *Config) { c.MaxImageBytes = 0 }},
		{"zero max pixels", func(c *Config) { c.MaxPixels = 0 }},
		{"negative rate", func(c *Config) { c.RateLimit = -1 }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
		{"https without cert", func(c *Config) { c.EnableHTTPS = true; c.TLSCertPath = "" }},
	}

	require.NoError(t, valid().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
