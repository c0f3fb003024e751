// Animerec - Anime Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Package recommend implements the placeholder anime recommender behind the
// /api/recommendations contract.
//
// # Behavior
//
// The engine does not model preferences. For each request it:
//
//  1. Draws min(max_recommendations, catalog size) distinct titles uniformly
//     at random from the built-in catalog.
//  2. Drops any drawn title that matches one of the caller's titles,
//     compared case-insensitively.
//  3. Truncates the result to max_recommendations entries.
//
// The min_score parameter is accepted by the API layer and echoed back, but it
// never filters anything here. A trained model would replace Engine while
// keeping the same Request/Response shapes.
//
// # Catalog
//
// The catalog is a fixed list of twenty titles compiled into the binary. It is
// never mutated; accessors return copies so callers cannot alter it.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//
//	resp, err := engine.Recommend(ctx, recommend.Request{
//	    Titles:             []string{"Attack on Titan", "Death Note"},
//	    MaxRecommendations: 10,
//	})
//
// # Thread Safety
//
// The engine is safe for concurrent use. The catalog is read-only and the
// random source is guarded by a mutex.
package recommend
