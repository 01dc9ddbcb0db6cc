// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

package recommend

import "github.com/tomtom215/provenance/internal/models"

// Request represents a recommendation request for one target artwork.
type Request struct {
	// Target is the artwork to find similar artworks for. A nil target
	// yields an empty result.
	Target *models.Artwork

	// Candidates is the pool to rank. It may contain the target, which is
	// filtered out by URI. Nil entries and repeated URIs are skipped.
	Candidates []*models.Artwork

	// Criteria names the similarity dimensions to score, as case-sensitive
	// lower-case tokens. Unrecognized names are ignored.
	Criteria []string

	// MaxResults caps the result length.
	// Defaults to Config.Limits.DefaultMaxResults if zero or negative.
	MaxResults int
}

// scored is a candidate with its per-criterion contributions.
type scored struct {
	candidate     subject
	score         float64
	contributions []float64
}
