// Animerec - Anime Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Command animerec runs the Anime Recommendation API.
//
// # Startup
//
// The serve command (also the default) initializes components in order:
//
//  1. Configuration: defaults, optional config.yaml, environment (Koanf v2)
//  2. Logging: zerolog, JSON or console
//  3. Tracing: OpenTelemetry OTLP/HTTP exporter when TRACING_ENABLED=true
//  4. Recommendation engine over the built-in catalog
//  5. HTTP router (chi) with request IDs, access logs, recovery, tracing,
//     Prometheus metrics and CORS
//  6. Supervisor tree (suture) running the HTTP server and the stats reporter
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the supervisor tree. The HTTP server stops
// accepting connections and waits up to SHUTDOWN_TIMEOUT for in-flight
// requests, then buffered spans are flushed.
//
// # Other Commands
//
//	animerec healthcheck --url http://127.0.0.1:5000/health
//	animerec catalog --query one
//	animerec version
//
// # Example
//
//	HTTP_PORT=8080 LOG_FORMAT=console ./animerec
package main
