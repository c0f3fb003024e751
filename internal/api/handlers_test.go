// Animerec - Anime Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package api

import (
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/animerec/internal/recommend"
)

var catalogTitles = recommend.DefaultCatalog().Titles()

func decodeRecommendation(t *testing.T, body []byte) RecommendationResponse {
	t.Helper()
	var resp RecommendationResponse
	require.NoError(t, json.Unmarshal(body, &resp), "body: %s", body)
	return resp
}

func decodeError(t *testing.T, body []byte) string {
	t.Helper()
	var resp map[string]string
	require.NoError(t, json.Unmarshal(body, &resp), "body: %s", body)
	require.Len(t, resp, 1)
	return resp["error"]
}

// assertValidRecommendations checks the invariants that hold for every
// successful response.
func assertValidRecommendations(t *testing.T, got []string, input []string, max int) {
	t.Helper()

	limit := max
	if limit > len(catalogTitles) {
		limit = len(catalogTitles)
	}
	if limit < 0 {
		limit = 0
	}
	assert.LessOrEqual(t, len(got), limit)

	seen := make(map[string]bool, len(got))
	for _, title := range got {
		assert.Contains(t, catalogTitles, title)
		assert.False(t, seen[title], "duplicate title %q", title)
		seen[title] = true
		for _, in := range input {
			assert.False(t, strings.EqualFold(title, in), "returned caller title %q", title)
		}
	}
}

func TestRecommendations_DefaultParameters(t *testing.T) {
	srv := newTestServer(t)
	input := []string{"Attack on Titan", "Death Note"}

	rec := do(t, srv, http.MethodPost, "/api/recommendations", `{"anime_titles": ["Attack on Titan", "Death Note"]}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decodeRecommendation(t, rec.Body.Bytes())
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, 2, resp.InputCount)
	assert.Equal(t, json.Number("10"), resp.MaxRecommendations)
	assert.Equal(t, "7.0", string(resp.MinScore))
	assert.GreaterOrEqual(t, len(resp.Recommendations), 8)
	assertValidRecommendations(t, resp.Recommendations, input, 10)
}

func TestRecommendations_SmallMax(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/api/recommendations", `{"anime_titles": ["Naruto Shippuden"], "max_recommendations": 3}`)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeRecommendation(t, rec.Body.Bytes())
	assert.Equal(t, 1, resp.InputCount)
	assert.Equal(t, json.Number("3"), resp.MaxRecommendations)
	assert.GreaterOrEqual(t, len(resp.Recommendations), 2)
	assertValidRecommendations(t, resp.Recommendations, []string{"Naruto Shippuden"}, 3)
}

func TestRecommendations_MaxLargerThanCatalog(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/api/recommendations", `{"anime_titles": ["Some Unknown Show"], "max_recommendations": 100}`)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeRecommendation(t, rec.Body.Bytes())
	assert.Equal(t, json.Number("100"), resp.MaxRecommendations)
	assert.ElementsMatch(t, catalogTitles, resp.Recommendations)
}

func TestRecommendations_CaseInsensitiveExclusion(t *testing.T) {
	srv := newTestServer(t)

	shouted := make([]string, len(catalogTitles))
	for i, title := range catalogTitles {
		shouted[i] = strings.ToUpper(title)
	}
	body, err := json.Marshal(map[string]any{"anime_titles": shouted, "max_recommendations": 20})
	require.NoError(t, err)

	rec := do(t, srv, http.MethodPost, "/api/recommendations", string(body))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"recommendations":[]`)
	resp := decodeRecommendation(t, rec.Body.Bytes())
	assert.Empty(t, resp.Recommendations)
	assert.Equal(t, 20, resp.InputCount)
}

func TestRecommendations_EdgeValues(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name    string
		body    string
		wantMax string
		wantLen int
	}{
		{"zero max", `{"anime_titles": ["Cowboy Bebop"], "max_recommendations": 0}`, "0", 0},
		{"negative max", `{"anime_titles": ["Cowboy Bebop"], "max_recommendations": -1}`, "-1", 0},
		{"negative beyond int range", `{"anime_titles": ["Cowboy Bebop"], "max_recommendations": -99999999999999999999}`, "-99999999999999999999", 0},
		{"beyond int range", `{"anime_titles": ["Cowboy Bebop"], "max_recommendations": 99999999999999999999}`, "99999999999999999999", len(catalogTitles) - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, srv, http.MethodPost, "/api/recommendations", tt.body)

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			resp := decodeRecommendation(t, rec.Body.Bytes())
			assert.Equal(t, json.Number(tt.wantMax), resp.MaxRecommendations)
			assert.Contains(t, rec.Body.String(), `"max_recommendations":`+tt.wantMax)
			assert.Len(t, resp.Recommendations, tt.wantLen)
			assert.NotNil(t, resp.Recommendations)
		})
	}
}

func TestRecommendations_MinScoreEchoedVerbatim(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		raw  string
	}{
		{"float", `9.5`},
		{"integer", `8`},
		{"string", `"high"`},
		{"null", `null`},
		{"negative", `-3.25`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, srv, http.MethodPost, "/api/recommendations",
				`{"anime_titles": ["Your Name"], "min_score": `+tt.raw+`}`)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), `"min_score":`+tt.raw)
		})
	}
}

func TestRecommendations_MissingTitles(t *testing.T) {
	srv := newTestServer(t)

	bodies := map[string]string{
		"no anime_titles key": `{"max_recommendations": 5}`,
		"empty object":        `{}`,
		"null body":           `null`,
		"not json":            `this is not json`,
		"array body":          `["Attack on Titan"]`,
		"string body":         `"Attack on Titan"`,
		"truncated json":      `{"anime_titles": [`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			rec := do(t, srv, http.MethodPost, "/api/recommendations", body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, "Missing anime_titles in request body", decodeError(t, rec.Body.Bytes()))
		})
	}

	t.Run("empty body", func(t *testing.T) {
		rec := do(t, srv, http.MethodPost, "/api/recommendations", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Missing anime_titles in request body", decodeError(t, rec.Body.Bytes()))
	})
}

func TestRecommendations_TitlesNotNonEmptyArray(t *testing.T) {
	srv := newTestServer(t)

	values := map[string]string{
		"empty array": `[]`,
		"string":      `"Attack on Titan"`,
		"null":        `null`,
		"object":      `{"title": "Attack on Titan"}`,
		"number":      `42`,
	}

	for name, v := range values {
		t.Run(name, func(t *testing.T) {
			rec := do(t, srv, http.MethodPost, "/api/recommendations", `{"anime_titles": `+v+`}`)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "anime_titles must be a non-empty array", decodeError(t, rec.Body.Bytes()))
		})
	}
}

func TestRecommendations_WrongValueTypesAreInternalErrors(t *testing.T) {
	srv := newTestServer(t)

	bodies := map[string]string{
		"float max":    `{"anime_titles": ["One Piece"], "max_recommendations": 5.5}`,
		"string max":   `{"anime_titles": ["One Piece"], "max_recommendations": "5"}`,
		"null max":     `{"anime_titles": ["One Piece"], "max_recommendations": null}`,
		"bool max":     `{"anime_titles": ["One Piece"], "max_recommendations": true}`,
		"number title": `{"anime_titles": [1, 2]}`,
		"null title":   `{"anime_titles": ["One Piece", null]}`,
		"nested array": `{"anime_titles": [["One Piece"]]}`,
		"object title": `{"anime_titles": [{"name": "One Piece"}]}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			rec := do(t, srv, http.MethodPost, "/api/recommendations", body)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			msg := decodeError(t, rec.Body.Bytes())
			assert.True(t, strings.HasPrefix(msg, "Internal server error: "), msg)
		})
	}
}

func TestRecommendations_Concurrent(t *testing.T) {
	srv := newTestServer(t)

	var wg sync.WaitGroup
	codes := make(chan int, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := do(t, srv, http.MethodPost, "/api/recommendations", `{"anime_titles": ["Death Note"], "max_recommendations": 5}`)
			codes <- rec.Code
		}()
	}
	wg.Wait()
	close(codes)

	for code := range codes {
		assert.Equal(t, http.StatusOK, code)
	}
}

func TestSearch(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"case insensitive substring", "ONE", []string{"One Piece", "One Punch Man"}},
		{"single match", "bebop", []string{"Cowboy Bebop"}},
		{"no match", "zzz", []string{}},
		{"blank query returns catalog", "", catalogTitles},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, srv, http.MethodGet, "/api/search?q="+tt.query, "")

			require.Equal(t, http.StatusOK, rec.Code)
			var resp SearchResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.query, resp.Query)
			assert.Equal(t, tt.want, resp.Results)
			assert.Equal(t, len(tt.want), resp.Count)
		})
	}
}
