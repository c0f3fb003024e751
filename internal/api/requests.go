// Animerec - Anime Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/tomtom215/animerec/internal/validation"
)

// RecommendationRequest is the parsed POST /api/recommendations body.
type RecommendationRequest struct {
	AnimeTitles []string
	// MaxRecommendations is clamped to the int range.
	MaxRecommendations int
	// MaxLiteral is max_recommendations as sent, for the response.
	MaxLiteral json.Number
	// MinScore is the caller's min_score exactly as sent, or the default.
	MinScore json.RawMessage
}

// RecommendationResponse is the POST /api/recommendations success body.
type RecommendationResponse struct {
	Recommendations    []string        `json:"recommendations"`
	InputCount         int             `json:"input_count"`
	MaxRecommendations json.Number     `json:"max_recommendations"`
	MinScore           json.RawMessage `json:"min_score"`
	Status             string          `json:"status"`
}

// titlesInput is validated before any element is inspected.
type titlesInput struct {
	AnimeTitles []json.RawMessage `json:"anime_titles" validate:"min=1"`
}

var jsonNull = []byte("null")

// parseRecommendationRequest reads and checks the request body.
//
// Shape problems (unreadable body, not an object, missing or empty
// anime_titles) are ErrInvalidRequest. Values of the wrong type inside an
// otherwise well-formed request (a non-integer max_recommendations, a
// non-string title) are ErrInternal.
func (h *Handler) parseRecommendationRequest(w http.ResponseWriter, r *http.Request) (*RecommendationRequest, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	if err != nil {
		return nil, invalidRequest(msgMissingTitles)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || len(fields) == 0 {
		return nil, invalidRequest(msgMissingTitles)
	}

	rawTitles, ok := fields["anime_titles"]
	if !ok {
		return nil, invalidRequest(msgMissingTitles)
	}

	var in titlesInput
	if err := json.Unmarshal(rawTitles, &in.AnimeTitles); err != nil {
		return nil, invalidRequest(msgTitlesArray)
	}
	if err := validation.ValidateStruct(&in); err != nil {
		return nil, invalidRequest(msgTitlesArray)
	}

	req := &RecommendationRequest{
		MaxRecommendations: h.defaultMax,
		MaxLiteral:         json.Number(strconv.Itoa(h.defaultMax)),
		MinScore:           h.defaultMinScore,
	}

	if raw, ok := fields["max_recommendations"]; ok {
		n, err := parseInteger(raw)
		if err != nil {
			return nil, internalError(fmt.Errorf("max_recommendations: %w", err))
		}
		req.MaxRecommendations = n
		req.MaxLiteral = json.Number(bytes.TrimSpace(raw))
	}

	if raw, ok := fields["min_score"]; ok {
		req.MinScore = raw
	}

	req.AnimeTitles = make([]string, len(in.AnimeTitles))
	for i, raw := range in.AnimeTitles {
		title, err := parseString(raw)
		if err != nil {
			return nil, internalError(fmt.Errorf("anime_titles[%d]: %w", i, err))
		}
		req.AnimeTitles[i] = title
	}

	return req, nil
}

// parseInteger accepts a bare JSON integer literal. Integers beyond the int
// range saturate at math.MinInt or math.MaxInt. Floats, strings, booleans and
// null are rejected.
func parseInteger(raw json.RawMessage) (int, error) {
	s := string(bytes.TrimSpace(raw))
	n, err := strconv.Atoi(s)
	if errors.Is(err, strconv.ErrRange) {
		return n, nil
	}
	if err != nil {
		return 0, fmt.Errorf("expected an integer, got %s", truncate(s, 32))
	}
	return n, nil
}

// parseString accepts a JSON string. null is rejected.
func parseString(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if bytes.Equal(trimmed, jsonNull) {
		return "", errors.New("expected a string, got null")
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return "", fmt.Errorf("expected a string, got %s", truncate(string(trimmed), 32))
	}
	return s, nil
}

// truncate shortens s to at most n bytes for error messages.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
