// Animerec - Anime Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package api

import (
	"net/http"

	"github.com/goccy/go-json"
)

// Fixed service identity reported by GET / and GET /health.
const (
	ServiceName    = "Anime Recommendation API"
	ServiceID      = "anime-recommendation-api"
	ServiceVersion = "1.0.0"
)

// HealthResponse is the GET /health body.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// InfoResponse is the GET / body.
type InfoResponse struct {
	Service        string            `json:"service"`
	Version        string            `json:"version"`
	Endpoints      map[string]string `json:"endpoints"`
	ExampleRequest ExampleRequest    `json:"example_request"`
}

// ExampleRequest shows callers how to reach the recommendation endpoint.
type ExampleRequest struct {
	URL    string      `json:"url"`
	Method string      `json:"method"`
	Body   ExampleBody `json:"body"`
}

// ExampleBody is a sample recommendation request body.
type ExampleBody struct {
	AnimeTitles        []string        `json:"anime_titles"`
	MaxRecommendations int             `json:"max_recommendations"`
	MinScore           json.RawMessage `json:"min_score"`
}

var infoResponse = InfoResponse{
	Service: ServiceName,
	Version: ServiceVersion,
	Endpoints: map[string]string{
		"/api/recommendations": "POST - Get anime recommendations",
		"/health":              "GET - Health check",
	},
	ExampleRequest: ExampleRequest{
		URL:    "/api/recommendations",
		Method: http.MethodPost,
		Body: ExampleBody{
			AnimeTitles:        []string{"Attack on Titan", "Death Note"},
			MaxRecommendations: 10,
			MinScore:           json.RawMessage("7.0"),
		},
	},
}

// Info handles GET /. The payload is fixed.
func (h *Handler) Info(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, infoResponse)
}

// Health handles GET /health. It answers as long as the process serves HTTP.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: ServiceID,
	})
}
