// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

package models

import "strings"

// Criterion is a named dimension of similarity between two artworks.
type Criterion string

const (
	CriterionArtist   Criterion = "artist"
	CriterionType     Criterion = "type"
	CriterionPeriod   Criterion = "period"
	CriterionLocation Criterion = "location"
	CriterionMedium   Criterion = "medium"
)

// AllCriteria lists every recognized criterion in canonical order.
var AllCriteria = []Criterion{
	CriterionArtist,
	CriterionType,
	CriterionPeriod,
	CriterionLocation,
	CriterionMedium,
}

// DefaultCriteria is used when a caller does not name any criteria.
var DefaultCriteria = []Criterion{
	CriterionArtist,
	CriterionPeriod,
	CriterionType,
	CriterionLocation,
}

// Known reports whether c is a recognized criterion.
func (c Criterion) Known() bool {
	for _, k := range AllCriteria {
		if c == k {
			return true
		}
	}
	return false
}

// ParseCriteria converts raw tokens into recognized criteria. Tokens are
// case-sensitive; unknown tokens are returned separately instead of failing
// so callers can pass forward-compatible names. Duplicates are collapsed and
// first-seen order is kept.
func ParseCriteria(tokens []string) (known []Criterion, unknown []string) {
	seen := make(map[Criterion]struct{}, len(tokens))
	for _, tok := range tokens {
		c := Criterion(tok)
		if !c.Known() {
			unknown = append(unknown, tok)
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		known = append(known, c)
	}
	return known, unknown
}

// SplitCriteria splits a comma-separated criteria list, trimming blanks.
//
//	SplitCriteria("artist, period,type") // ["artist", "period", "type"]
func SplitCriteria(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// CriteriaStrings converts criteria back into their tokens.
func CriteriaStrings(criteria []Criterion) []string {
	out := make([]string, len(criteria))
	for i, c := range criteria {
		out[i] = string(c)
	}
	return out
}

// Recommendation is one ranked candidate for a target artwork.
type Recommendation struct {
	Artwork *Artwork `json:"artwork"`

	// Score is the mean of the requested criteria contributions, in [0, 1].
	Score float64 `json:"similarity_score"`

	// MatchedCriteria lists requested criteria whose contribution passed the
	// match threshold. Display only; ranking uses Score.
	MatchedCriteria []Criterion `json:"matched_criteria"`

	// Reasons holds one human-readable line per matched criterion.
	Reasons []string `json:"reasons"`

	Explanation string `json:"explanation,omitempty"`
}

// RecommendationRequest asks for artworks similar to TargetURI.
type RecommendationRequest struct {
	TargetURI  string   `json:"target_uri" validate:"required,uri"`
	Criteria   []string `json:"criteria"`
	MaxResults int      `json:"max_results" validate:"min=1,max=50"`
}
