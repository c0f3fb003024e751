// Animerec - Anime Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

import "fmt"

// Default request parameters applied when the caller omits them.
const (
	DefaultMaxRecommendations = 10
	DefaultMinScore           = 7.0
)

// Config contains configuration for the recommendation engine.
type Config struct {
	// Seed is the random seed for the sampler.
	// If zero, the engine seeds from the clock and results vary per process.
	Seed int64 `json:"seed"`

	// DefaultMaxRecommendations is used when a request omits max_recommendations.
	DefaultMaxRecommendations int `json:"default_max_recommendations"`

	// DefaultMinScore is echoed when a request omits min_score.
	DefaultMinScore float64 `json:"default_min_score"`
}

// DefaultConfig returns the configuration matching the public API contract.
func DefaultConfig() *Config {
	return &Config{
		Seed:                      0,
		DefaultMaxRecommendations: DefaultMaxRecommendations,
		DefaultMinScore:           DefaultMinScore,
	}
}

// Validate checks the configuration for values the engine cannot work with.
func (c *Config) Validate() error {
	if c.DefaultMaxRecommendations < 0 {
		return fmt.Errorf("default_max_recommendations must be non-negative, got %d", c.DefaultMaxRecommendations)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
