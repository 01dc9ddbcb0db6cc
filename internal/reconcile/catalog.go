// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

package reconcile

import "github.com/tomtom215/provenance/internal/models"

// Catalog is the result of a reconciliation: one artwork per identity, kept
// in the order identities were first seen in the input.
type Catalog struct {
	order []string
	byURI map[string]*models.Artwork
}

func newCatalog(capacity int) *Catalog {
	return &Catalog{
		order: make([]string, 0, capacity),
		byURI: make(map[string]*models.Artwork, capacity),
	}
}

func (c *Catalog) add(a *models.Artwork) {
	if _, exists := c.byURI[a.URI]; exists {
		return
	}
	c.order = append(c.order, a.URI)
	c.byURI[a.URI] = a
}

// Len returns the number of distinct artworks.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Get returns the artwork for uri.
func (c *Catalog) Get(uri string) (*models.Artwork, bool) {
	a, ok := c.byURI[uri]
	return a, ok
}

// Contains reports whether uri was reconciled.
func (c *Catalog) Contains(uri string) bool {
	_, ok := c.byURI[uri]
	return ok
}

// URIs returns identities in first-seen order.
func (c *Catalog) URIs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Artworks returns artworks in first-seen order. This is the natural
// candidate pool order for recommendations.
func (c *Catalog) Artworks() []*models.Artwork {
	out := make([]*models.Artwork, len(c.order))
	for i, uri := range c.order {
		out[i] = c.byURI[uri]
	}
	return out
}
