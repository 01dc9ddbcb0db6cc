// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

package reconcile

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/provenance/internal/metrics"
	"github.com/tomtom215/provenance/internal/models"
)

// Options configures a Reconciler.
type Options struct {
	// Namespace is the local catalog URI prefix used to derive
	// Artwork.LocalHeritage. Empty means no artwork is local.
	Namespace string
}

// Reconciler turns flat query bindings into canonical artworks.
// It holds no mutable state and is safe for concurrent use.
type Reconciler struct {
	opts   Options
	logger zerolog.Logger
}

// New creates a Reconciler.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(opts Options, logger zerolog.Logger) *Reconciler {
	return &Reconciler{
		opts:   opts,
		logger: logger.With().Str("component", "reconcile").Logger(),
	}
}

// Reconcile groups bindings by artwork identity and merges each group into
// one Artwork.
//
// Single-valued fields take the first bound value in binding order; later
// values are discarded. Images are an ordered set union. The creator and
// the location are each taken as an (identity, name) pair from a single
// binding and never stitched across bindings.
//
// Bindings without an artwork identity are dropped with a warning. An empty
// input yields an empty, non-nil Catalog.
func (r *Reconciler) Reconcile(bindings []Binding) *Catalog {
	start := time.Now()

	groups := make(map[string]*draft)
	order := make([]string, 0)
	dropped := 0

	for i, b := range bindings {
		uri, ok := b.Value(VarArtwork)
		if !ok {
			dropped++
			metrics.RecordBinding(false)
			r.logger.Warn().
				Int("row", i).
				Int("variables", len(b)).
				Msg("dropping binding without artwork identity")
			continue
		}
		metrics.RecordBinding(true)

		d, exists := groups[uri]
		if !exists {
			d = newDraft(uri)
			groups[uri] = d
			order = append(order, uri)
		}
		d.merge(b)
	}

	catalog := newCatalog(len(order))
	for _, uri := range order {
		catalog.add(r.finish(groups[uri]))
	}

	accepted := len(bindings) - dropped
	metrics.RecordReconciliation(accepted, catalog.Len(), time.Since(start))

	r.logger.Debug().
		Int("bindings", len(bindings)).
		Int("dropped", dropped).
		Int("artworks", catalog.Len()).
		Msg("reconciled bindings")

	return catalog
}

// finish applies field defaults and type classification to a merged draft.
// Both the bulk and the single-entity path end here so their output is
// structurally identical.
func (r *Reconciler) finish(d *draft) *models.Artwork {
	title := d.title
	if title == "" {
		title = models.DefaultTitle
	}

	images := d.images
	if images == nil {
		images = []string{}
	}

	classification := models.ClassifyType(d.typeLabel)
	metrics.RecordTypeClassification(string(classification.Outcome), classification.Type.String())
	if classification.Outcome == models.ClassificationUnmatched {
		r.logger.Debug().
			Str("artwork", d.uri).
			Str("type_label", d.typeLabel).
			Str("default", classification.Type.String()).
			Msg("unrecognized type label")
	}

	a := &models.Artwork{
		URI:            d.uri,
		Title:          title,
		AlternateTitle: models.StringPtr(d.alternateTitle),
		Images:         images,
		CreationDate:   models.StringPtr(d.date),
		Type:           classification.Type,
		Medium:         models.StringPtr(d.medium),
		Description:    models.StringPtr(d.description),
		LocalHeritage:  models.IsLocalHeritage(d.uri, r.opts.Namespace),
	}

	if d.artist.uri != "" {
		a.Artist = &models.Agent{
			URI:  d.artist.uri,
			Name: nameOrDefault(d.artist.name, models.DefaultAgentName),
			Role: models.AgentPerson,
		}
	}
	if d.location.uri != "" {
		a.Location = &models.Location{
			URI:  d.location.uri,
			Name: nameOrDefault(d.location.name, models.DefaultPlaceName),
		}
	}

	return a
}

func nameOrDefault(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
