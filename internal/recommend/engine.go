// Animerec - Anime Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"github.com/tomtom215/animerec/internal/tracing"
)

// Engine produces placeholder recommendations from a fixed catalog.
// It is safe for concurrent use.
type Engine struct {
	config  *Config
	catalog Catalog
	logger  zerolog.Logger

	// Random source (protected by rngMu; *rand.Rand is not safe for concurrent use)
	rng   *rand.Rand
	rngMu sync.Mutex

	// Metrics
	requestCount  atomic.Int64
	excludedCount atomic.Int64
	errorCount    atomic.Int64
}

// NewEngine creates a new recommendation engine backed by the default catalog.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	return NewEngineWithCatalog(cfg, DefaultCatalog(), logger)
}

// NewEngineWithCatalog creates an engine backed by the given catalog.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngineWithCatalog(cfg *Config, catalog Catalog, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Engine{
		config:  cfg.Clone(),
		catalog: catalog,
		logger:  logger.With().Str("component", "recommend").Logger(),
		rng:     rand.New(rand.NewSource(seed)), //nolint:gosec // math/rand is fine for placeholder sampling
	}, nil
}

// Recommend draws a random sample from the catalog and removes the caller's titles.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	if err := ctx.Err(); err != nil {
		e.errorCount.Add(1)
		return nil, fmt.Errorf("recommend: %w", err)
	}

	if req.RequestID == "" {
		req.RequestID = e.generateRequestID()
	}
	logger := e.createRequestLogger(req)

	_, span := tracing.StartSpan(ctx, "recommend.sample")
	defer span.End()

	sampleSize := req.MaxRecommendations
	if sampleSize > e.catalog.Len() {
		sampleSize = e.catalog.Len()
	}
	sampled := e.sample(sampleSize)

	known := buildExclusionSet(req.Titles)
	filtered := filterTitles(sampled, known)

	// Redundant after the bounded draw, but keeps the result size tied to the request.
	limit := req.MaxRecommendations
	if limit < 0 {
		limit = 0
	}
	if len(filtered) > limit {
		filtered = filtered[:limit]
	}

	excluded := len(sampled) - len(filtered)
	e.excludedCount.Add(int64(excluded))

	span.SetAttributes(
		attribute.Int("recommend.input_count", len(req.Titles)),
		attribute.Int("recommend.sample_size", len(sampled)),
		attribute.Int("recommend.excluded", excluded),
		attribute.Int("recommend.returned", len(filtered)),
	)

	resp := &Response{
		Recommendations: filtered,
		Metadata: ResponseMetadata{
			RequestID:  req.RequestID,
			SampleSize: len(sampled),
			Excluded:   excluded,
			LatencyMS:  time.Since(start).Milliseconds(),
		},
	}

	logger.Debug().
		Int("sample_size", len(sampled)).
		Int("excluded", excluded).
		Int("returned", len(filtered)).
		Msg("recommendation complete")

	return resp, nil
}

// Search returns catalog titles containing query, ignoring case.
func (e *Engine) Search(query string) []string {
	return e.catalog.Search(query)
}

// Catalog returns a copy of the catalog titles.
func (e *Engine) Catalog() []string {
	return e.catalog.Titles()
}

// GetMetrics returns the current engine metrics.
func (e *Engine) GetMetrics() Metrics {
	return Metrics{
		RequestCount:  e.requestCount.Load(),
		ExcludedCount: e.excludedCount.Load(),
		ErrorCount:    e.errorCount.Load(),
		CatalogSize:   e.catalog.Len(),
	}
}

// GetConfig returns a copy of the current configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Clone()
}

// sample draws n distinct titles uniformly at random without replacement.
func (e *Engine) sample(n int) []string {
	if n <= 0 {
		return []string{}
	}

	e.rngMu.Lock()
	perm := e.rng.Perm(e.catalog.Len())
	e.rngMu.Unlock()

	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = e.catalog.At(perm[i])
	}
	return out
}

// createRequestLogger creates a logger with request context.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) createRequestLogger(req Request) zerolog.Logger {
	return e.logger.With().
		Str("request_id", req.RequestID).
		Int("input_count", len(req.Titles)).
		Int("max_recommendations", req.MaxRecommendations).
		Logger()
}

// generateRequestID generates a unique request ID for tracing.
// This method is safe for concurrent use.
func (e *Engine) generateRequestID() string {
	e.rngMu.Lock()
	n := e.rng.Intn(10000)
	e.rngMu.Unlock()
	return fmt.Sprintf("rec-%d-%d", time.Now().UnixNano(), n)
}

// buildExclusionSet lowercases the caller's titles into a lookup set.
func buildExclusionSet(titles []string) map[string]struct{} {
	set := make(map[string]struct{}, len(titles))
	for _, t := range titles {
		set[strings.ToLower(t)] = struct{}{}
	}
	return set
}

// filterTitles keeps titles whose lowercase form is not in exclude, preserving order.
func filterTitles(titles []string, exclude map[string]struct{}) []string {
	filtered := make([]string, 0, len(titles))
	for _, t := range titles {
		if _, skip := exclude[strings.ToLower(t)]; skip {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}
