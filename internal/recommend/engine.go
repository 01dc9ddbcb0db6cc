// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

package recommend

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/provenance/internal/logging"
	"github.com/tomtom215/provenance/internal/metrics"
	"github.com/tomtom215/provenance/internal/models"
)

// Engine scores and ranks candidate artworks against a target.
// It holds only immutable configuration and is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger
}

// NewEngine creates a new recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config: cfg.Clone(),
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// Recommend ranks req.Candidates by similarity to req.Target.
//
// The score of a candidate is the mean of its contributions over the
// recognized requested criteria. Results are sorted by score descending,
// then by URI ascending, and truncated to MaxResults. Candidates scoring
// zero sort after every positive score, so they only fill otherwise empty
// slots. The target itself is never returned.
//
// Recommend never fails: a nil target or an empty pool yields an empty,
// non-nil slice.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) []models.Recommendation {
	start := time.Now()

	req = e.prepareRequest(req)
	logger := e.createRequestLogger(ctx, req)

	if req.Target == nil || len(req.Candidates) == 0 {
		logger.Debug().
			Bool("has_target", req.Target != nil).
			Int("candidates", len(req.Candidates)).
			Msg("nothing to rank")
		return e.emptyResponse(len(req.Candidates), start)
	}

	criteria, unknown := models.ParseCriteria(req.Criteria)
	if len(unknown) > 0 {
		metrics.RecordUnknownCriteria(len(unknown))
		logger.Debug().
			Strs("unknown_criteria", unknown).
			Msg("ignoring unrecognized criteria")
	}
	if len(criteria) == 0 {
		logger.Debug().Msg("no recognized criteria; all candidates score zero")
	}

	target := newSubject(req.Target)
	ranked := e.scoreCandidates(target, req.Candidates, criteria)
	sortRanked(ranked)

	if len(ranked) > req.MaxResults {
		ranked = ranked[:req.MaxResults]
	}

	recs := e.buildRecommendations(target, ranked, criteria)
	metrics.RecordRecommendation(len(req.Candidates), len(recs), time.Since(start))

	logger.Debug().
		Int("candidates", len(req.Candidates)).
		Int("returned", len(recs)).
		Strs("criteria", models.CriteriaStrings(criteria)).
		Dur("latency", time.Since(start)).
		Msg("recommendation complete")

	return recs
}

// prepareRequest applies result size defaults and limits.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(req Request) Request {
	if req.MaxResults <= 0 {
		req.MaxResults = e.config.Limits.DefaultMaxResults
	}
	if req.MaxResults > e.config.Limits.MaxResults {
		req.MaxResults = e.config.Limits.MaxResults
	}
	return req
}

// createRequestLogger creates a logger with request context.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) createRequestLogger(ctx context.Context, req Request) zerolog.Logger {
	lc := e.logger.With().Int("max_results", req.MaxResults)
	if req.Target != nil {
		lc = lc.Str("target", req.Target.URI)
	}
	if id := logging.CorrelationIDFromContext(ctx); id != "" {
		lc = lc.Str("correlation_id", id)
	}
	return lc.Logger()
}

// emptyResponse records and returns an empty result.
func (e *Engine) emptyResponse(candidates int, start time.Time) []models.Recommendation {
	metrics.RecordRecommendation(candidates, 0, time.Since(start))
	return []models.Recommendation{}
}

// scoreCandidates computes contributions and scores for every eligible
// candidate. The target, nil entries and repeated URIs are skipped.
func (e *Engine) scoreCandidates(target subject, candidates []*models.Artwork, criteria []models.Criterion) []scored {
	out := make([]scored, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	seen[target.art.URI] = struct{}{}

	for _, c := range candidates {
		if c == nil {
			continue
		}
		if _, dup := seen[c.URI]; dup {
			continue
		}
		seen[c.URI] = struct{}{}

		cand := newSubject(c)
		s := scored{
			candidate:     cand,
			contributions: make([]float64, len(criteria)),
		}

		if len(criteria) > 0 {
			var sum float64
			for i, criterion := range criteria {
				v := clamp01(e.contribution(criterion, target, cand))
				s.contributions[i] = v
				sum += v
			}
			s.score = clamp01(sum / float64(len(criteria)))
		}

		out = append(out, s)
	}

	return out
}

// sortRanked orders by score descending, then URI ascending.
func sortRanked(items []scored) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].score != items[j].score {
			return items[i].score > items[j].score
		}
		return items[i].candidate.art.URI < items[j].candidate.art.URI
	})
}

// buildRecommendations converts ranked candidates into result records.
func (e *Engine) buildRecommendations(target subject, ranked []scored, criteria []models.Criterion) []models.Recommendation {
	recs := make([]models.Recommendation, 0, len(ranked))

	for _, s := range ranked {
		matched := make([]models.Criterion, 0, len(criteria))
		reasons := make([]string, 0, len(criteria))

		for i, criterion := range criteria {
			if !e.isMatched(criterion, s.contributions[i]) {
				continue
			}
			matched = append(matched, criterion)
			reasons = append(reasons, reason(criterion, target, s.candidate))
		}

		recs = append(recs, models.Recommendation{
			Artwork:         s.candidate.art,
			Score:           s.score,
			MatchedCriteria: matched,
			Reasons:         reasons,
			Explanation:     explain(reasons),
		})
	}

	return recs
}
