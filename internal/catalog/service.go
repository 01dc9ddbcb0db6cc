// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tomtom215/provenance/internal/metrics"
	"github.com/tomtom215/provenance/internal/models"
	"github.com/tomtom215/provenance/internal/recommend"
	"github.com/tomtom215/provenance/internal/reconcile"
	"github.com/tomtom215/provenance/internal/validation"
)

// ErrArtworkNotFound is returned by an EntityLookup when the identity is
// unknown to the graph store.
var ErrArtworkNotFound = errors.New("artwork not found")

// Target resolution sources reported to metrics.
const (
	sourceBulk    = "bulk"
	sourceLookup  = "lookup"
	sourceMissing = "missing"
)

// RowSource supplies the bulk artwork query result.
type RowSource interface {
	// Rows returns at most limit bindings. A limit of zero means no limit.
	Rows(ctx context.Context, limit int) ([]reconcile.Binding, error)
}

// EntityLookup fetches one artwork by identity. Implementations return
// ErrArtworkNotFound when the identity does not exist.
type EntityLookup interface {
	LookupArtwork(ctx context.Context, uri string) (reconcile.EntityRecord, error)
}

// Options configures a Service.
type Options struct {
	// Namespace is the local catalog URI prefix.
	Namespace string

	// QueryLimit caps the rows requested from the RowSource.
	QueryLimit int

	// DefaultCriteria is used when a request names no criteria.
	DefaultCriteria []string

	// DefaultMaxResults is used when a request does not set MaxResults.
	DefaultMaxResults int

	// Breaker configures the circuit breaker around the EntityLookup.
	Breaker BreakerSettings
}

// Service runs the request-scoped pipeline: fetch rows, reconcile, resolve
// the target and rank. All I/O happens here, before the engine is invoked.
type Service struct {
	opts       Options
	rows       RowSource
	lookup     *breakerLookup
	reconciler *reconcile.Reconciler
	engine     *recommend.Engine
	logger     zerolog.Logger
}

// NewService creates a catalog service. lookup may be nil, in which case
// targets missing from the bulk result are treated as not found.
//
//nolint:gocritic // opts and logger passed by value for immutability
func NewService(opts Options, rows RowSource, lookup EntityLookup, engine *recommend.Engine, logger zerolog.Logger) (*Service, error) {
	if rows == nil {
		return nil, errors.New("catalog: row source is required")
	}
	if engine == nil {
		return nil, errors.New("catalog: recommendation engine is required")
	}
	if opts.QueryLimit < 0 {
		return nil, fmt.Errorf("catalog: query limit must be non-negative, got %d", opts.QueryLimit)
	}
	if len(opts.DefaultCriteria) == 0 {
		opts.DefaultCriteria = models.CriteriaStrings(models.DefaultCriteria)
	}
	if opts.DefaultMaxResults <= 0 {
		opts.DefaultMaxResults = engine.Config().Limits.DefaultMaxResults
	}

	s := &Service{
		opts:       opts,
		rows:       rows,
		reconciler: reconcile.New(reconcile.Options{Namespace: opts.Namespace}, logger),
		engine:     engine,
		logger:     logger.With().Str("component", "catalog").Logger(),
	}
	if lookup != nil {
		s.lookup = newBreakerLookup(lookup, opts.Breaker, s.logger)
	}
	return s, nil
}

// ArtworkURI builds the identity of a local artwork from its short id.
//
//	ArtworkURI("http://arp-greatteam.org/heritage-provenance/", "42")
//	// http://arp-greatteam.org/heritage-provenance/artwork/42
func ArtworkURI(namespace, id string) string {
	return namespace + "artwork/" + strings.TrimPrefix(id, "/")
}

// Reconcile fetches the bulk rows and reconciles them.
func (s *Service) Reconcile(ctx context.Context) (*reconcile.Catalog, error) {
	rows, err := s.rows.Rows(ctx, s.opts.QueryLimit)
	if err != nil {
		return nil, fmt.Errorf("fetch artwork rows: %w", err)
	}
	return s.reconciler.Reconcile(rows), nil
}

// Artwork returns one artwork, preferring the bulk result and falling back
// to the single-identity lookup.
func (s *Service) Artwork(ctx context.Context, uri string) (*models.Artwork, error) {
	catalog, err := s.Reconcile(ctx)
	if err != nil {
		return nil, err
	}
	return s.resolveTarget(ctx, catalog, uri)
}

// Recommend ranks the bulk catalog against req.TargetURI.
//
// Missing criteria and max results take the configured defaults before
// validation. A target that neither the bulk rows nor the lookup can
// resolve yields an empty result without error. Row source and lookup
// failures are returned before any ranking happens.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (s *Service) Recommend(ctx context.Context, req models.RecommendationRequest) ([]models.Recommendation, error) {
	req = s.applyDefaults(req)
	if verr := validation.ValidateStruct(&req); verr != nil {
		return nil, verr
	}

	catalog, err := s.Reconcile(ctx)
	if err != nil {
		return nil, err
	}

	target, err := s.resolveTarget(ctx, catalog, req.TargetURI)
	if errors.Is(err, ErrArtworkNotFound) {
		s.logger.Info().Str("target", req.TargetURI).Msg("target artwork not found; returning no recommendations")
		return []models.Recommendation{}, nil
	}
	if err != nil {
		return nil, err
	}

	return s.engine.Recommend(ctx, recommend.Request{
		Target:     target,
		Candidates: catalog.Artworks(),
		Criteria:   req.Criteria,
		MaxResults: req.MaxResults,
	}), nil
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (s *Service) applyDefaults(req models.RecommendationRequest) models.RecommendationRequest {
	req.TargetURI = strings.TrimSpace(req.TargetURI)
	if len(req.Criteria) == 0 {
		req.Criteria = append([]string(nil), s.opts.DefaultCriteria...)
	}
	if req.MaxResults == 0 {
		req.MaxResults = s.opts.DefaultMaxResults
	}
	return req
}

// resolveTarget finds uri in the bulk catalog or through the lookup.
func (s *Service) resolveTarget(ctx context.Context, catalog *reconcile.Catalog, uri string) (*models.Artwork, error) {
	if a, ok := catalog.Get(uri); ok {
		metrics.RecordTargetResolution(sourceBulk)
		return a, nil
	}

	if s.lookup == nil {
		metrics.RecordTargetResolution(sourceMissing)
		return nil, ErrArtworkNotFound
	}

	s.logger.Debug().Str("target", uri).Msg("target not in bulk result; using lookup")

	rec, err := s.lookup.LookupArtwork(ctx, uri)
	if err != nil {
		if errors.Is(err, ErrArtworkNotFound) {
			metrics.RecordTargetResolution(sourceMissing)
			return nil, err
		}
		return nil, fmt.Errorf("lookup artwork %s: %w", uri, err)
	}
	if strings.TrimSpace(rec.URI) == "" {
		rec.URI = uri
	}

	a, err := s.reconciler.FromRecord(rec)
	if err != nil {
		return nil, fmt.Errorf("build artwork %s: %w", uri, err)
	}
	metrics.RecordTargetResolution(sourceLookup)
	return a, nil
}
