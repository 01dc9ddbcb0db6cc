// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/tomtom215/provenance/internal/models"
	"github.com/tomtom215/provenance/internal/validation"
)

// Listing result bounds. They cap the artworks returned, not the rows read;
// see Options.QueryLimit for the latter.
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// Filter selects artworks from the reconciled catalog. Empty fields match
// everything; set fields must all match.
type Filter struct {
	// ArtistURI matches the identity of the artwork's artist.
	ArtistURI string `json:"artist" validate:"omitempty,uri"`

	// LocationURI matches the identity of the artwork's location.
	LocationURI string `json:"location" validate:"omitempty,uri"`

	// Type matches the classified artwork type.
	Type *models.ArtworkType `json:"type"`

	// Medium matches the medium label, ignoring case and surrounding space.
	Medium string `json:"medium"`

	// Limit caps the result. Zero takes DefaultListLimit.
	Limit int `json:"limit" validate:"min=1,max=100"`
}

// Match reports whether a passes every set field of f.
//
//nolint:gocritic // hugeParam: f passed by value for immutability
func (f Filter) Match(a *models.Artwork) bool {
	if a == nil {
		return false
	}
	if f.ArtistURI != "" && (!a.HasArtist() || a.Artist.URI != f.ArtistURI) {
		return false
	}
	if f.LocationURI != "" && (!a.HasLocation() || a.Location.URI != f.LocationURI) {
		return false
	}
	if f.Type != nil && a.Type != *f.Type {
		return false
	}
	if medium := strings.TrimSpace(f.Medium); medium != "" {
		if a.Medium == nil || !strings.EqualFold(strings.TrimSpace(*a.Medium), medium) {
			return false
		}
	}
	return true
}

// List reconciles the catalog and returns the artworks that pass f, in
// first-seen order and at most f.Limit of them.
//
//nolint:gocritic // hugeParam: f passed by value for immutability
func (s *Service) List(ctx context.Context, f Filter) ([]*models.Artwork, error) {
	f.ArtistURI = strings.TrimSpace(f.ArtistURI)
	f.LocationURI = strings.TrimSpace(f.LocationURI)
	if f.Limit == 0 {
		f.Limit = DefaultListLimit
	}
	if verr := validation.ValidateStruct(&f); verr != nil {
		return nil, verr
	}
	if f.Type != nil && !f.Type.Valid() {
		return nil, fmt.Errorf("catalog: invalid artwork type %d", *f.Type)
	}

	catalog, err := s.Reconcile(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*models.Artwork, 0, min(f.Limit, catalog.Len()))
	for _, a := range catalog.Artworks() {
		if !f.Match(a) {
			continue
		}
		out = append(out, a)
		if len(out) == f.Limit {
			break
		}
	}

	s.logger.Debug().
		Int("matched", len(out)).
		Int("catalog", catalog.Len()).
		Int("limit", f.Limit).
		Msg("catalog listed")
	return out, nil
}
