// Animerec - Anime Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package config

import (
	"fmt"
	"strings"

	"github.com/tomtom215/animerec/internal/logging"
	"github.com/tomtom215/animerec/internal/validation"
)

// reservedPaths are routes the metrics endpoint must not shadow.
var reservedPaths = map[string]bool{
	"/":                    true,
	"/health":              true,
	"/api/recommendations": true,
	"/api/search":          true,
}

// Validate checks struct tags first, then the cross-field rules tags cannot express.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return err
	}

	if err := c.validateLogging(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	if err := c.validateTracing(); err != nil {
		return err
	}

	return c.validateMetrics()
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	return nil
}

// validateSecurity rejects a wildcard mixed with explicit origins, which would
// silently allow everything.
func (c *Config) validateSecurity() error {
	if len(c.Security.CORSOrigins) > 1 {
		for _, origin := range c.Security.CORSOrigins {
			if origin == "*" {
				return fmt.Errorf("CORS_ORIGINS cannot mix '*' with explicit origins")
			}
		}
	}
	return nil
}

func (c *Config) validateTracing() error {
	if c.Tracing.Enabled && strings.TrimSpace(c.Tracing.Endpoint) == "" {
		return fmt.Errorf("OTEL_EXPORTER_OTLP_ENDPOINT is required when TRACING_ENABLED=true")
	}
	return nil
}

func (c *Config) validateMetrics() error {
	if c.Metrics.Enabled && reservedPaths[c.Metrics.Path] {
		return fmt.Errorf("METRICS_PATH %q collides with an API route", c.Metrics.Path)
	}
	return nil
}
