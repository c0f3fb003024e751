// Animerec - Anime Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/animerec/internal/logging"
	"github.com/tomtom215/animerec/internal/metrics"
	"github.com/tomtom215/animerec/internal/recommend"
)

// Recommendations handles POST /api/recommendations.
//
// The response holds up to max_recommendations catalog titles, none of which
// match (ignoring case) a title the caller sent. min_score is echoed back
// unchanged and does not filter anything.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	req, err := h.parseRecommendationRequest(w, r)
	if err != nil {
		outcome := metrics.OutcomeError
		if errors.Is(err, ErrInvalidRequest) {
			outcome = metrics.OutcomeInvalidRequest
		}
		metrics.RecordRecommendationFailure(outcome)
		respondError(w, r, err)
		return
	}

	resp, err := h.engine.Recommend(r.Context(), recommend.Request{
		Titles:             req.AnimeTitles,
		MaxRecommendations: req.MaxRecommendations,
		RequestID:          logging.RequestIDFromContext(r.Context()),
	})
	if err != nil {
		metrics.RecordRecommendationFailure(metrics.OutcomeError)
		respondError(w, r, internalError(err))
		return
	}

	metrics.RecordRecommendation(len(resp.Recommendations), resp.Metadata.Excluded)

	logging.Ctx(r.Context()).Debug().
		Str("component", "api").
		Int("input_count", len(req.AnimeTitles)).
		Int("returned", len(resp.Recommendations)).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendations served")

	respondJSON(w, http.StatusOK, RecommendationResponse{
		Recommendations:    resp.Recommendations,
		InputCount:         len(req.AnimeTitles),
		MaxRecommendations: req.MaxLiteral,
		MinScore:           req.MinScore,
		Status:             "success",
	})
}
