// Animerec - Anime Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/animerec/internal/logging"
)

// errorResponse is the body of every error response.
type errorResponse struct {
	Error string `json:"error"`
}

// sanitizeLogValue escapes control characters so client-supplied text cannot
// forge log lines.
func sanitizeLogValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&b, "\\x%02x", r)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// respondJSON writes v as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("failed to marshal JSON response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Internal server error: response encoding failed"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Debug().Err(err).Msg("failed to write JSON response")
	}
}

// respondError logs err and writes {"error": msg} with the status its kind maps to.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusAndMessage(err)

	logger := logging.Ctx(r.Context())
	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.
		Str("component", "api").
		Int("status", status).
		Str("path", r.URL.Path).
		Str("error", sanitizeLogValue(err.Error())).
		Msg("request failed")

	respondJSON(w, status, errorResponse{Error: message})
}

// respondPanic is the JSON recoverer's response writer.
func respondPanic(w http.ResponseWriter, _ *http.Request, err error) {
	respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal server error: " + err.Error()})
}
