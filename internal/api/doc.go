// Animerec - Anime Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package api provides the HTTP layer for animerec.

Endpoints:

	GET  /                     service metadata (fixed payload)
	GET  /health               liveness (fixed payload)
	POST /api/recommendations  placeholder recommendations
	GET  /api/search?q=        case-insensitive catalog search
	GET  /metrics              Prometheus exposition, when enabled

Anything else gets chi's default 404 or 405.

# Recommendation Requests

	{"anime_titles": ["Attack on Titan", "Death Note"], "max_recommendations": 10, "min_score": 7.0}

anime_titles is required and must be a non-empty array. max_recommendations
defaults to 10 and min_score to 7.0. min_score is echoed back verbatim and
never filters anything.

Errors are JSON objects with a single "error" key:

	400  {"error": "Missing anime_titles in request body"}
	400  {"error": "anime_titles must be a non-empty array"}
	500  {"error": "Internal server error: <message>"}

The 500 case covers values of the wrong type (a non-integer
max_recommendations, a non-string title) and recovered panics.

# Middleware

Every request passes through, in order: request ID assignment, RealIP,
access logging, the JSON panic recoverer, OpenTelemetry server spans,
Prometheus instrumentation, and CORS.
*/
package api
