package config

import (
	"fmt"

	"github.com/knadh/koanf/v2"
)

const (
	defaultServerPort   = 8080
	defaultMaxBodyBytes = 1 << 20

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultCommandsMaxConcurrency = 4
)

// defaults returns the built-in values, keyed by koanf path. They are
// loaded first so every key exists before YAML and env vars are applied.
func defaults() map[string]any {
	return map[string]any{
		"server.host":           "0.0.0.0",
		"server.port":           defaultServerPort,
		"server.read_timeout":   "5s",
		"server.write_timeout":  "10s",
		"server.idle_timeout":   "120s",
		"server.max_body_bytes": defaultMaxBodyBytes,

		"log.level":  "info",
		"log.format": "json",

		"client.base_url":                        "http://localhost:8080",
		"client.timeout":                         "15s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "2s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst_size":           1,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "command-host",

		"commands.dispatch_timeout": "5s",
		"commands.max_concurrency":  defaultCommandsMaxConcurrency,
	}
}

// loadDefaults seeds k with defaults(). Every known key exists afterwards,
// so env vars can target keys no YAML file mentions.
func loadDefaults(k *koanf.Koanf) error {
	for key, val := range defaults() {
		if err := k.Set(key, val); err != nil {
			return fmt.Errorf("setting default %s: %w", key, err)
		}
	}
	return nil
}
