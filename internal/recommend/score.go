// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

package recommend

import (
	"math"
	"strings"

	"github.com/tomtom215/provenance/internal/models"
)

// subject is a target or candidate with its parsed year cached.
type subject struct {
	art     *models.Artwork
	year    int
	hasYear bool
}

func newSubject(a *models.Artwork) subject {
	s := subject{art: a}
	if a.CreationDate != nil {
		s.year, s.hasYear = ParseYear(*a.CreationDate)
	}
	return s
}

// contribution returns the [0, 1] similarity of candidate to target on one
// criterion. Absent values never match.
func (e *Engine) contribution(c models.Criterion, target, candidate subject) float64 {
	switch c {
	case models.CriterionArtist:
		return artistSimilarity(target.art, candidate.art)
	case models.CriterionType:
		return typeSimilarity(target.art, candidate.art)
	case models.CriterionLocation:
		return locationSimilarity(target.art, candidate.art)
	case models.CriterionMedium:
		return mediumSimilarity(target.art, candidate.art)
	case models.CriterionPeriod:
		return e.periodSimilarity(target, candidate)
	default:
		return 0
	}
}

func artistSimilarity(a, b *models.Artwork) float64 {
	if !a.HasArtist() || !b.HasArtist() {
		return 0
	}
	return boolScore(a.Artist.URI == b.Artist.URI)
}

func typeSimilarity(a, b *models.Artwork) float64 {
	return boolScore(a.Type == b.Type)
}

func locationSimilarity(a, b *models.Artwork) float64 {
	if !a.HasLocation() || !b.HasLocation() {
		return 0
	}
	return boolScore(a.Location.URI == b.Location.URI)
}

func mediumSimilarity(a, b *models.Artwork) float64 {
	if a.Medium == nil || b.Medium == nil {
		return 0
	}
	ma := strings.TrimSpace(*a.Medium)
	mb := strings.TrimSpace(*b.Medium)
	if ma == "" || mb == "" {
		return 0
	}
	return boolScore(strings.EqualFold(ma, mb))
}

// periodSimilarity decays linearly from 1 at the same year to 0 at the
// configured window.
func (e *Engine) periodSimilarity(a, b subject) float64 {
	if !a.hasYear || !b.hasYear {
		return 0
	}
	diff := math.Abs(float64(a.year - b.year))
	sim := 1.0 - diff/e.config.PeriodWindowYears
	if sim < 0 {
		return 0
	}
	return sim
}

// isMatched reports whether a contribution counts as a matched criterion.
func (e *Engine) isMatched(c models.Criterion, contribution float64) bool {
	if c == models.CriterionPeriod {
		return contribution > e.config.PeriodMatchThreshold
	}
	return contribution > e.config.ExactMatchThreshold
}

func boolScore(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// clamp01 bounds v to [0, 1].
func clamp01(v float64) float64 {
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
