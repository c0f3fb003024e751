// Animerec - Anime Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newTestEngine(t *testing.T, seed int64) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = seed
	e, err := NewEngine(cfg, zerolog.Nop())
	require.NoError(t, err)
	return e
}

func TestNewEngine(t *testing.T) {
	t.Parallel()

	t.Run("nil config uses defaults", func(t *testing.T) {
		t.Parallel()
		e, err := NewEngine(nil, zerolog.Nop())
		require.NoError(t, err)
		assert.Equal(t, DefaultMaxRecommendations, e.GetConfig().DefaultMaxRecommendations)
	})

	t.Run("invalid config rejected", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultConfig()
		cfg.DefaultMaxRecommendations = -5
		_, err := NewEngine(cfg, zerolog.Nop())
		assert.Error(t, err)
	})

	t.Run("config is copied", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultConfig()
		e, err := NewEngine(cfg, zerolog.Nop())
		require.NoError(t, err)
		cfg.DefaultMaxRecommendations = 1
		assert.Equal(t, DefaultMaxRecommendations, e.GetConfig().DefaultMaxRecommendations)
	})
}

func TestEngine_Recommend_SampleSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		max  int
		want int
	}{
		{"default", 10, 10},
		{"one", 1, 1},
		{"zero", 0, 0},
		{"negative", -3, 0},
		{"whole catalog", 20, 20},
		{"beyond catalog", 50, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := newTestEngine(t, 1)
			resp, err := e.Recommend(context.Background(), Request{
				Titles:             []string{"Something Unlisted"},
				MaxRecommendations: tt.max,
			})
			require.NoError(t, err)
			assert.Len(t, resp.Recommendations, tt.want)
			assert.NotNil(t, resp.Recommendations)
			assert.Equal(t, tt.want, resp.Metadata.SampleSize)
			assert.Zero(t, resp.Metadata.Excluded)
		})
	}
}

func TestEngine_Recommend_DistinctCatalogMembers(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 0)
	catalog := DefaultCatalog().Titles()

	for i := 0; i < 50; i++ {
		resp, err := e.Recommend(context.Background(), Request{
			Titles:             []string{"x"},
			MaxRecommendations: 20,
		})
		require.NoError(t, err)

		seen := make(map[string]bool)
		for _, title := range resp.Recommendations {
			assert.Contains(t, catalog, title, "unknown title %q", title)
			assert.False(t, seen[title], "duplicate title %q", title)
			seen[title] = true
		}
	}
}

func TestEngine_Recommend_ExcludesInputCaseInsensitive(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 0)
	input := []string{"death note", "ATTACK ON TITAN", "One Piece"}

	for i := 0; i < 50; i++ {
		resp, err := e.Recommend(context.Background(), Request{
			Titles:             input,
			MaxRecommendations: 20,
		})
		require.NoError(t, err)

		assert.Len(t, resp.Recommendations, 17)
		assert.Equal(t, 20, resp.Metadata.SampleSize)
		assert.Equal(t, 3, resp.Metadata.Excluded)
		for _, title := range resp.Recommendations {
			for _, in := range input {
				assert.NotEqual(t, strings.ToLower(in), strings.ToLower(title))
			}
		}
	}
}

func TestEngine_Recommend_AllExcluded(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 3)
	resp, err := e.Recommend(context.Background(), Request{
		Titles:             e.Catalog(),
		MaxRecommendations: 20,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Recommendations)
	assert.NotNil(t, resp.Recommendations)
	assert.Equal(t, 20, resp.Metadata.Excluded)
}

func TestEngine_Recommend_DeterministicWithSeed(t *testing.T) {
	t.Parallel()

	req := Request{Titles: []string{"Naruto"}, MaxRecommendations: 10}

	a := newTestEngine(t, 42)
	b := newTestEngine(t, 42)

	for i := 0; i < 5; i++ {
		ra, err := a.Recommend(context.Background(), req)
		require.NoError(t, err)
		rb, err := b.Recommend(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, ra.Recommendations, rb.Recommendations)
	}
}

func TestEngine_Recommend_RequestID(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 1)

	resp, err := e.Recommend(context.Background(), Request{Titles: []string{"a"}, MaxRecommendations: 1, RequestID: "req-123"})
	require.NoError(t, err)
	assert.Equal(t, "req-123", resp.Metadata.RequestID)

	resp, err = e.Recommend(context.Background(), Request{Titles: []string{"a"}, MaxRecommendations: 1})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.Metadata.RequestID, "rec-"))
}

func TestEngine_Recommend_CanceledContext(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Recommend(ctx, Request{Titles: []string{"a"}, MaxRecommendations: 5})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int64(1), e.GetMetrics().ErrorCount)
}

func TestEngine_Recommend_EmptyCatalog(t *testing.T) {
	t.Parallel()

	e, err := NewEngineWithCatalog(DefaultConfig(), NewCatalog(nil), zerolog.Nop())
	require.NoError(t, err)

	resp, err := e.Recommend(context.Background(), Request{Titles: []string{"a"}, MaxRecommendations: 10})
	require.NoError(t, err)
	assert.Empty(t, resp.Recommendations)
}

func TestEngine_Concurrent(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 0)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				resp, err := e.Recommend(context.Background(), Request{
					Titles:             []string{"Cowboy Bebop"},
					MaxRecommendations: 5,
				})
				if err != nil {
					t.Errorf("Recommend: %v", err)
					return
				}
				if len(resp.Recommendations) > 5 {
					t.Errorf("got %d recommendations, want <= 5", len(resp.Recommendations))
				}
			}
		}()
	}
	wg.Wait()

	m := e.GetMetrics()
	assert.Equal(t, int64(500), m.RequestCount)
	assert.Zero(t, m.ErrorCount)
	assert.Equal(t, 20, m.CatalogSize)
}

func TestEngine_SearchAndCatalog(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 1)
	assert.Equal(t, []string{"Hunter x Hunter"}, e.Search("hunter"))

	titles := e.Catalog()
	assert.Len(t, titles, 20)
	titles[0] = "changed"
	assert.Equal(t, "Demon Slayer: Kimetsu no Yaiba", e.Catalog()[0])
}

func TestRecommend_RecordsSampleSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	e := newTestEngine(t, 7)
	resp, err := e.Recommend(context.Background(), Request{
		Titles:             []string{"Death Note"},
		MaxRecommendations: 5,
	})
	require.NoError(t, err)

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "recommend.sample", ended[0].Name())

	attrs := make(map[string]int64)
	for _, kv := range ended[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.AsInt64()
	}
	assert.Equal(t, int64(1), attrs["recommend.input_count"])
	assert.Equal(t, int64(5), attrs["recommend.sample_size"])
	assert.Equal(t, int64(len(resp.Recommendations)), attrs["recommend.returned"])
}
