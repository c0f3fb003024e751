// Animerec - Anime Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package middleware provides chi-compatible HTTP middleware shared by the API router.

Key Components:

  - PrometheusMetrics: request count, latency and in-flight instrumentation
  - AccessLog: one structured zerolog line per request
  - Recoverer: converts handler panics into a caller-supplied error response

All middleware has the func(http.Handler) http.Handler shape and wraps the
response with chi's WrapResponseWriter to observe the status code.

Middleware Stack:

	r := chi.NewRouter()
	r.Use(api.RequestIDWithLogging())
	r.Use(middleware.AccessLog)
	r.Use(middleware.Recoverer(onPanic))
	r.Use(middleware.PrometheusMetrics)

Metric labels use the chi route pattern (for example /api/recommendations)
rather than the raw path.
*/
package middleware
