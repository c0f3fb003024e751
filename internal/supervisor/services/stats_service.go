// Animerec - Anime Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/animerec/internal/metrics"
	"github.com/tomtom215/animerec/internal/recommend"
)

const defaultStatsInterval = 5 * time.Minute

// StatsSource exposes engine counters. Satisfied by *recommend.Engine.
type StatsSource interface {
	GetMetrics() recommend.Metrics
}

// StatsReporterService periodically logs engine counters and publishes the
// catalog size gauge.
type StatsReporterService struct {
	source   StatsSource
	interval time.Duration
	logger   zerolog.Logger
	name     string
	last     recommend.Metrics
}

// NewStatsReporterService creates the reporter. A non-positive interval falls
// back to five minutes.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewStatsReporterService(source StatsSource, interval time.Duration, logger zerolog.Logger) *StatsReporterService {
	if interval <= 0 {
		interval = defaultStatsInterval
	}
	return &StatsReporterService{
		source:   source,
		interval: interval,
		logger:   logger.With().Str("service", "stats-reporter").Logger(),
		name:     "stats-reporter",
	}
}

// Serve implements suture.Service.
func (s *StatsReporterService) Serve(ctx context.Context) error {
	s.logger.Debug().Dur("interval", s.interval).Msg("stats reporter starting")

	s.report()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.report()
			return ctx.Err()
		case <-ticker.C:
			s.report()
		}
	}
}

// report logs the counters, including the delta since the previous report.
func (s *StatsReporterService) report() {
	m := s.source.GetMetrics()
	metrics.SetCatalogSize(m.CatalogSize)

	s.logger.Info().
		Int64("requests", m.RequestCount).
		Int64("requests_since_last", m.RequestCount-s.last.RequestCount).
		Int64("excluded", m.ExcludedCount).
		Int64("errors", m.ErrorCount).
		Int("catalog_size", m.CatalogSize).
		Msg("recommendation engine stats")

	s.last = m
}

// String implements fmt.Stringer.
func (s *StatsReporterService) String() string {
	return s.name
}
