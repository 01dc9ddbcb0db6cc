// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

// Package recommend ranks artworks by similarity to a target artwork.
//
// # Scoring
//
// Each requested criterion contributes a value in [0, 1]:
//
//   - artist: 1 when both artworks have a creator with the same URI
//   - type: 1 when both artwork types are equal
//   - location: 1 when both artworks have a location with the same URI
//   - medium: 1 when both media are present and equal, ignoring case and
//     surrounding space
//   - period: 1 - |yearA - yearB| / PeriodWindowYears, floored at 0; 0 when
//     either date has no parseable year
//
// A missing value on either side contributes 0 and is never a match. The
// score is the arithmetic mean over the recognized requested criteria, so
// scores stay comparable regardless of how many criteria were requested.
//
// # Ranking
//
// Candidates are sorted by score descending, then URI ascending, and the
// list is truncated to MaxResults. The target is always filtered out.
// MatchedCriteria and Reasons are for display only and never affect order.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//
//	recs := engine.Recommend(ctx, recommend.Request{
//	    Target:     target,
//	    Candidates: catalog.Artworks(),
//	    Criteria:   []string{"artist", "period"},
//	    MaxResults: 10,
//	})
//
// # Thread Safety
//
// The engine holds only immutable configuration and may be shared freely.
package recommend
