// Animerec - Anime Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Package services adapts animerec components to suture.Service.
//
//   - HTTPServerService drives an *http.Server: ListenAndServe in a goroutine,
//     graceful Shutdown when the supervisor cancels the context.
//   - StatsReporterService logs recommendation engine counters on a ticker
//     and keeps the recommend_catalog_titles gauge current.
//
// Every service returns ctx.Err() on cancellation and implements fmt.Stringer
// so suture can name it in log messages.
package services
