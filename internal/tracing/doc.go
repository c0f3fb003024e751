// Animerec - Anime Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Package tracing wires OpenTelemetry into Animerec.
//
// Init installs a TracerProvider that batches spans to an OTLP/HTTP collector
// when tracing is enabled; otherwise the global no-op provider stays in place.
// Middleware opens a server span per request, and the recommender adds a
// child span around sampling.
//
//	shutdown, err := tracing.Init(ctx, tracing.Config{
//	    Enabled:     true,
//	    Endpoint:    "localhost:4318",
//	    Insecure:    true,
//	    ServiceName: "animerec",
//	    SampleRatio: 1,
//	})
//	defer shutdown(context.Background())
package tracing
