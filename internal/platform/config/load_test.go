package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-command-bridge/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, 5*time.Second, cfg.Commands.DispatchTimeout)
	assert.Equal(t, 4, cfg.Commands.MaxConcurrency)
	assert.Zero(t, cfg.Client.RateLimit.RequestsPerSecond, "rate limiting is off by default")
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("prod")
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "otlp", cfg.Telemetry.Exporter)
	assert.NotEmpty(t, cfg.Telemetry.Endpoint)
	assert.InDelta(t, 50, cfg.Client.RateLimit.RequestsPerSecond, 0)
	assert.Equal(t, 10, cfg.Client.RateLimit.BurstSize)
	assert.Equal(t, 3*time.Second, cfg.Commands.DispatchTimeout)
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 3, cfg.Client.Retry.MaxAttempts)
	assert.Equal(t, 5, cfg.Client.CircuitBreaker.MaxFailures)
	assert.Equal(t, "command-host", cfg.Telemetry.ServiceName)
}

func TestLoad_DefaultsFillMissingKeys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), "log:\n  level: warn\n")
	writeFile(t, filepath.Join(dir, "ci.yaml"), "server:\n  port: 9191\n")

	cfg, err := config.Load("ci", config.WithConfigDir(dir))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, int64(1<<20), cfg.Server.MaxBodyBytes)
	assert.Equal(t, "http://localhost:8080", cfg.Client.BaseURL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		value string
		check func(t *testing.T, cfg *config.Config)
	}{
		{
			name: "simple key", env: "APP_SERVER_PORT", value: "9090",
			check: func(t *testing.T, cfg *config.Config) { assert.Equal(t, 9090, cfg.Server.Port) },
		},
		{
			name: "snake case key", env: "APP_SERVER_READ_TIMEOUT", value: "15s",
			check: func(t *testing.T, cfg *config.Config) { assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout) },
		},
		{
			name: "deeply nested key", env: "APP_CLIENT_RETRY_MAX_ATTEMPTS", value: "7",
			check: func(t *testing.T, cfg *config.Config) { assert.Equal(t, 7, cfg.Client.Retry.MaxAttempts) },
		},
		{
			name: "key only present in defaults", env: "APP_CLIENT_RATE_LIMIT_REQUESTS_PER_SECOND", value: "2.5",
			check: func(t *testing.T, cfg *config.Config) {
				assert.InDelta(t, 2.5, cfg.Client.RateLimit.RequestsPerSecond, 0.0001)
			},
		},
		{
			name: "commands section", env: "APP_COMMANDS_MAX_CONCURRENCY", value: "16",
			check: func(t *testing.T, cfg *config.Config) { assert.Equal(t, 16, cfg.Commands.MaxConcurrency) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir("../../..")
			t.Setenv(tt.env, tt.value)

			cfg, err := config.Load("local")
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoad_InvalidProfiles(t *testing.T) {
	t.Chdir("../../..")

	for _, profile := range []string{"", "  ", "nonexistent", "../configs/local", `a\b`} {
		_, err := config.Load(profile)
		assert.Error(t, err, "profile %q", profile)
	}
}

func TestLoad_ValidationFailureIsReported(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_COMMANDS_DISPATCH_TIMEOUT", "30s")

	_, err := config.Load("local")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "commands.dispatch_timeout")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*config.Config) {}},
		{name: "port zero", mutate: func(c *config.Config) { c.Server.Port = 0 }, wantErr: "server.port"},
		{name: "bad log level", mutate: func(c *config.Config) { c.Log.Level = "verbose" }, wantErr: "log.level"},
		{name: "bad log format", mutate: func(c *config.Config) { c.Log.Format = "xml" }, wantErr: "log.format"},
		{name: "empty base url", mutate: func(c *config.Config) { c.Client.BaseURL = "" }, wantErr: "client.base_url"},
		{
			name:    "otlp without endpoint",
			mutate:  func(c *config.Config) { c.Telemetry = config.TelemetryConfig{Enabled: true, Exporter: "otlp", ServiceName: "x"} },
			wantErr: "telemetry.endpoint",
		},
		{
			name:    "telemetry without service name",
			mutate:  func(c *config.Config) { c.Telemetry = config.TelemetryConfig{Enabled: true, Exporter: "stdout"} },
			wantErr: "telemetry.service_name",
		},
		{
			name:    "negative rate",
			mutate:  func(c *config.Config) { c.Client.RateLimit.RequestsPerSecond = -1 },
			wantErr: "client.rate_limit.requests_per_second",
		},
		{
			name:    "rate without burst",
			mutate:  func(c *config.Config) { c.Client.RateLimit = config.RateLimitConfig{RequestsPerSecond: 5} },
			wantErr: "client.rate_limit.burst_size",
		},
		{
			name:    "zero dispatch timeout",
			mutate:  func(c *config.Config) { c.Commands.DispatchTimeout = 0 },
			wantErr: "commands.dispatch_timeout",
		},
		{
			name:    "zero concurrency",
			mutate:  func(c *config.Config) { c.Commands.MaxConcurrency = 0 },
			wantErr: "commands.max_concurrency",
		},
		{
			name:    "dispatch outlives write timeout",
			mutate:  func(c *config.Config) { c.Commands.DispatchTimeout = c.Server.WriteTimeout },
			wantErr: "must be shorter than server.write_timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validBaseConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_AggregatesErrors(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Server.Port = 0
	cfg.Log.Level = "loud"
	cfg.Commands.MaxConcurrency = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port")
	assert.Contains(t, err.Error(), "log.level")
	assert.Contains(t, err.Error(), "commands.max_concurrency")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
			MaxBodyBytes: 1 << 20,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Client: config.ClientConfig{
			BaseURL: "http://localhost:8080",
			Timeout: 15 * time.Second,
			Retry: config.RetryConfig{
				MaxAttempts:     3,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     2 * time.Second,
				Multiplier:      2.0,
			},
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
		},
		Telemetry: config.TelemetryConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
		Commands: config.CommandsConfig{
			DispatchTimeout: 5 * time.Second,
			MaxConcurrency:  4,
		},
	}
}
