// Animerec - Anime Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package api

import (
	"net/http"

	"github.com/tomtom215/animerec/internal/metrics"
)

// SearchResponse is the GET /api/search body.
type SearchResponse struct {
	Query   string   `json:"query"`
	Results []string `json:"results"`
	Count   int      `json:"count"`
}

// Search handles GET /api/search?q=<text>.
// Matching is a case-insensitive substring test in catalog order. A blank
// query returns the whole catalog.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	results := h.engine.Search(q)
	metrics.RecordSearch()

	respondJSON(w, http.StatusOK, SearchResponse{
		Query:   q,
		Results: results,
		Count:   len(results),
	})
}
