// Animerec - Anime Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Package logging provides the zerolog-based structured logger used across Animerec.
//
// A global logger is configured once at startup from the logging section of
// the configuration and is then reachable through package-level helpers.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Str("addr", addr).Msg("Server starting")
//	logging.Err(err).Msg("Shutdown failed")
//
// # Request Context
//
// The API middleware calls ContextWithRequest, which stores the request ID and
// a request-scoped logger carrying it. Ctx logs through that logger and adds
// trace_id and span_id when a span is active:
//
//	logging.Ctx(r.Context()).Info().Msg("Processing request")
//
// # Environment Variables
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json, console (default: json)
//	LOG_CALLER  - include caller file:line (default: false)
//
// # slog Bridge
//
// NewSlogLogger returns a *slog.Logger writing through zerolog. The supervisor
// tree uses it with sutureslog.
//
// # Best Practices
//
// Always terminate event chains with .Msg() or .Send(); an unterminated event
// is never written. Prefer typed fields over Msgf formatting.
package logging
