// Animerec - Anime Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Package config loads and validates Animerec configuration.
//
// Configuration is layered with Koanf v2: built-in defaults, then an optional
// YAML file, then environment variables. Later layers win.
//
// # Config File
//
// The first existing file among CONFIG_PATH, config.yaml, config.yml,
// /etc/animerec/config.yaml and /etc/animerec/config.yml is loaded:
//
//	server:
//	  host: 0.0.0.0
//	  port: 5000
//	  shutdown_timeout: 10s
//	security:
//	  cors_origins: ["*"]
//	logging:
//	  level: info
//	  format: json
//	recommend:
//	  seed: 0
//	  default_max: 10
//	  default_min_score: 7.0
//	tracing:
//	  enabled: false
//	  endpoint: localhost:4318
//	metrics:
//	  enabled: true
//	  path: /metrics
//
// # Environment Variables
//
// Only mapped variables are read; see envTransformFunc. Common ones:
//
//	HTTP_PORT, HTTP_HOST, CORS_ORIGINS (comma-separated), LOG_LEVEL, LOG_FORMAT,
//	RECOMMEND_SEED, TRACING_ENABLED, OTEL_EXPORTER_OTLP_ENDPOINT, METRICS_ENABLED
//
// # Validation
//
// Struct fields carry go-playground/validator tags; Validate adds cross-field
// checks. Any failure aborts startup.
package config
