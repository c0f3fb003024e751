// Animerec - Anime Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package api

import (
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/animerec/internal/recommend"
)

// maxRequestBodyBytes caps the recommendation request body.
const maxRequestBodyBytes = 1 << 20

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_health.go: GET / and GET /health
//   - handlers_recommend.go: POST /api/recommendations
//   - handlers_search.go: GET /api/search
type Handler struct {
	engine *recommend.Engine

	// Request defaults, taken from the engine configuration.
	defaultMax      int
	defaultMinScore json.RawMessage
}

// NewHandler creates a handler backed by engine.
func NewHandler(engine *recommend.Engine) *Handler {
	cfg := engine.GetConfig()
	return &Handler{
		engine:          engine,
		defaultMax:      cfg.DefaultMaxRecommendations,
		defaultMinScore: formatScore(cfg.DefaultMinScore),
	}
}

// formatScore renders a score as a JSON number that always carries a
// fractional part, so the default 7.0 is echoed as 7.0 rather than 7.
func formatScore(v float64) json.RawMessage {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return json.RawMessage(s)
}
