// Animerec - Anime Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/animerec/internal/config"
	"github.com/tomtom215/animerec/internal/middleware"
	"github.com/tomtom215/animerec/internal/tracing"
)

// Route describes one registered endpoint, for the startup banner.
type Route struct {
	Method      string
	Path        string
	Description string
}

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	config        *config.Config
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. cfg supplies CORS and metrics settings.
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	return &Router{
		handler:       handler,
		config:        cfg,
		chiMiddleware: NewChiMiddlewareFromSecurity(cfg.Security.CORSOrigins, cfg.Security.CORSMaxAge),
	}
}

// Routes lists the endpoints Setup registers.
func (router *Router) Routes() []Route {
	routes := []Route{
		{http.MethodPost, "/api/recommendations", "Get anime recommendations"},
		{http.MethodGet, "/api/search", "Search the catalog"},
		{http.MethodGet, "/health", "Health check"},
		{http.MethodGet, "/", "API information"},
	}
	if router.config.Metrics.Enabled {
		routes = append(routes, Route{http.MethodGet, router.config.Metrics.Path, "Prometheus metrics"})
	}
	return routes
}

// Setup builds the HTTP handler.
//
// Unknown paths and wrong methods get chi's default 404 and 405 responses.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	traceSkip := []string{"/health"}
	if router.config.Metrics.Enabled {
		traceSkip = append(traceSkip, router.config.Metrics.Path)
	}

	// Applied to all routes, in order.
	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(middleware.Recoverer(respondPanic))
	r.Use(tracing.Middleware(nil, traceSkip...))
	r.Use(middleware.PrometheusMetrics)
	r.Use(router.chiMiddleware.CORS())

	r.Get("/", router.handler.Info)
	r.Get("/health", router.handler.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/recommendations", router.handler.Recommendations)
		r.Get("/search", router.handler.Search)
	})

	if router.config.Metrics.Enabled {
		r.Method(http.MethodGet, router.config.Metrics.Path, promhttp.Handler())
	}

	return r
}
