// Animerec - Anime Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: built-in values matching the public API contract
//  2. Config File: optional YAML file (config.yaml) for persistent settings
//  3. Environment Variables: override any mapped setting
//
// Config is immutable after Load() and safe for concurrent reads.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
	Recommend RecommendConfig `koanf:"recommend"`
	Tracing   TracingConfig   `koanf:"tracing"`
	Metrics   MetricsConfig   `koanf:"metrics"`
}

// ServerConfig holds HTTP listener settings.
//
// Environment Variables:
//   - HTTP_PORT: listen port (default: 5000)
//   - HTTP_HOST: bind address (default: 0.0.0.0)
//   - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT
//   - SHUTDOWN_TIMEOUT: graceful shutdown budget (default: 10s)
type ServerConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gte=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gte=0"`
	IdleTimeout     time.Duration `koanf:"idle_timeout" validate:"gte=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// SecurityConfig holds cross-origin settings.
//
// Environment Variables:
//   - CORS_ORIGINS: comma-separated allowed origins (default: *)
//   - CORS_MAX_AGE: preflight cache lifetime in seconds (default: 300)
type SecurityConfig struct {
	CORSOrigins []string `koanf:"cors_origins" validate:"min=1,dive,required"`
	CORSMaxAge  int      `koanf:"cors_max_age" validate:"gte=0"`
}

// LoggingConfig holds logger settings.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// RecommendConfig holds placeholder recommender settings.
//
// Environment Variables:
//   - RECOMMEND_SEED: fixed random seed, 0 seeds from the clock (default: 0)
//   - RECOMMEND_DEFAULT_MAX: max_recommendations when omitted (default: 10)
//   - RECOMMEND_DEFAULT_MIN_SCORE: min_score echoed when omitted (default: 7.0)
type RecommendConfig struct {
	Seed            int64   `koanf:"seed"`
	DefaultMax      int     `koanf:"default_max" validate:"gte=0"`
	DefaultMinScore float64 `koanf:"default_min_score"`
}

// TracingConfig holds OpenTelemetry export settings. Tracing is off unless enabled.
//
// Environment Variables:
//   - TRACING_ENABLED: export spans (default: false)
//   - OTEL_EXPORTER_OTLP_ENDPOINT: collector host:port (default: localhost:4318)
//   - OTEL_EXPORTER_OTLP_INSECURE: plain HTTP to the collector (default: true)
//   - OTEL_SERVICE_NAME: service.name resource attribute (default: animerec)
//   - TRACING_SAMPLE_RATIO: fraction of traces sampled (default: 1.0)
type TracingConfig struct {
	Enabled     bool    `koanf:"enabled"`
	Endpoint    string  `koanf:"endpoint"`
	Insecure    bool    `koanf:"insecure"`
	ServiceName string  `koanf:"service_name" validate:"required"`
	SampleRatio float64 `koanf:"sample_ratio" validate:"gte=0,lte=1"`
}

// MetricsConfig controls the Prometheus scrape endpoint.
//
// Environment Variables:
//   - METRICS_ENABLED: serve the scrape endpoint (default: true)
//   - METRICS_PATH: scrape path (default: /metrics)
type MetricsConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path" validate:"startswith=/"`
}

// Load reads configuration from defaults, an optional YAML file, and the environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
