// Animerec - Anime Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

// Request represents a recommendation request.
type Request struct {
	// Titles are the titles the caller already knows. They are excluded
	// from the result, compared case-insensitively.
	Titles []string `json:"titles"`

	// MaxRecommendations bounds the result size.
	// Zero and negative values produce an empty result.
	MaxRecommendations int `json:"max_recommendations"`

	// RequestID is a unique identifier for tracing.
	RequestID string `json:"request_id,omitempty"`
}

// Response represents a recommendation response.
type Response struct {
	// Recommendations is the filtered sample, in draw order.
	Recommendations []string `json:"recommendations"`

	// Metadata contains sampling and timing information.
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata contains diagnostic information about a single request.
type ResponseMetadata struct {
	// RequestID is the unique request identifier.
	RequestID string `json:"request_id"`

	// SampleSize is the number of titles drawn before filtering.
	SampleSize int `json:"sample_size"`

	// Excluded is the number of drawn titles removed because the caller supplied them.
	Excluded int `json:"excluded"`

	// LatencyMS is the processing latency in milliseconds.
	LatencyMS int64 `json:"latency_ms"`
}

// Metrics holds engine-wide counters since startup.
type Metrics struct {
	// RequestCount is the number of Recommend calls.
	RequestCount int64 `json:"request_count"`

	// ExcludedCount is the total number of drawn titles filtered out.
	ExcludedCount int64 `json:"excluded_count"`

	// ErrorCount is the number of Recommend calls that returned an error.
	ErrorCount int64 `json:"error_count"`

	// CatalogSize is the number of titles available.
	CatalogSize int `json:"catalog_size"`
}
