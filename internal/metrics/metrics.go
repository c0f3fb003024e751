// Animerec - Anime Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recommendation outcomes used as the "outcome" label.
const (
	OutcomeSuccess        = "success"
	OutcomeInvalidRequest = "invalid_request"
	OutcomeError          = "error"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Recommendation Metrics
	RecommendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"outcome"},
	)

	RecommendReturnedItems = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_returned_items",
			Help:    "Number of titles returned per successful recommendation",
			Buckets: []float64{0, 1, 2, 5, 10, 15, 20},
		},
	)

	RecommendFilteredItems = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_filtered_items_total",
			Help: "Total number of sampled titles dropped because the caller already supplied them",
		},
	)

	RecommendCatalogTitles = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommend_catalog_titles",
			Help: "Number of titles in the recommendation catalog",
		},
	)

	SearchRequestsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "search_requests_total",
			Help: "Total number of catalog search requests",
		},
	)

	// Build Metrics
	BuildInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "animerec_build_info",
			Help: "Build information; value is always 1",
		},
		[]string{"version"},
	)
)

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records a successful recommendation.
func RecordRecommendation(returned, filtered int) {
	RecommendRequestsTotal.WithLabelValues(OutcomeSuccess).Inc()
	RecommendReturnedItems.Observe(float64(returned))
	RecommendFilteredItems.Add(float64(filtered))
}

// RecordRecommendationFailure records a rejected or failed recommendation.
func RecordRecommendationFailure(outcome string) {
	RecommendRequestsTotal.WithLabelValues(outcome).Inc()
}

// SetCatalogSize publishes the catalog size.
func SetCatalogSize(n int) {
	RecommendCatalogTitles.Set(float64(n))
}

// RecordSearch records a catalog search.
func RecordSearch() {
	SearchRequestsTotal.Inc()
}

// SetBuildInfo publishes the running version.
func SetBuildInfo(version string) {
	BuildInfo.WithLabelValues(version).Set(1)
}
