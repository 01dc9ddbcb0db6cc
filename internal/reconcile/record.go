// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

package reconcile

import (
	"errors"
	"strings"

	"github.com/tomtom215/provenance/internal/models"
)

// ErrMissingIdentity is returned when a single-entity record has no URI.
var ErrMissingIdentity = errors.New("entity record has no identity")

// EntityRef is a nested {uri, name} sub-object of an entity record.
type EntityRef struct {
	URI  string `json:"uri"`
	Name string `json:"name"`
}

// LabelRef is a nested {label} sub-object of an entity record.
type LabelRef struct {
	Label string `json:"label"`
}

// EntityRecord is one pre-fetched, already shaped artwork as returned by a
// single-identity lookup. All fields except URI are optional.
type EntityRecord struct {
	URI         string     `json:"uri"`
	Title       *string    `json:"title,omitempty"`
	Date        *string    `json:"date,omitempty"`
	Type        *string    `json:"type,omitempty"`
	ImageURL    *string    `json:"imageURL,omitempty"`
	Description *string    `json:"description,omitempty"`
	Artist      *EntityRef `json:"artist,omitempty"`
	Location    *EntityRef `json:"location,omitempty"`
	Material    *LabelRef  `json:"material,omitempty"`
}

// FromRecord builds an Artwork from a single-entity record using the same
// defaults and classification as Reconcile. The record title is also kept
// as the alternate (native-language) title.
//
//nolint:gocritic // hugeParam: rec passed by value for immutability
func (r *Reconciler) FromRecord(rec EntityRecord) (*models.Artwork, error) {
	uri := strings.TrimSpace(rec.URI)
	if uri == "" {
		return nil, ErrMissingIdentity
	}

	d := newDraft(uri)
	d.title = deref(rec.Title)
	d.alternateTitle = d.title
	d.date = deref(rec.Date)
	d.typeLabel = deref(rec.Type)
	d.description = deref(rec.Description)
	d.addImage(deref(rec.ImageURL))

	if rec.Material != nil {
		d.medium = strings.TrimSpace(rec.Material.Label)
	}
	if rec.Artist != nil {
		d.artist.offer(strings.TrimSpace(rec.Artist.URI), strings.TrimSpace(rec.Artist.Name))
	}
	if rec.Location != nil {
		d.location.offer(strings.TrimSpace(rec.Location.URI), strings.TrimSpace(rec.Location.Name))
	}

	return r.finish(d), nil
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}
