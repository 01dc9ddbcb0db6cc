// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

/*
Package reconcile merges flattened graph-query rows into canonical artworks.

A query that joins an artwork against several independent optional
relationships returns one row per combination of matched branches. The same
artwork therefore appears in many rows, each carrying a different partial
set of values. Reconcile groups rows by the artwork identity and merges
each group with a fixed policy:

  - Single-valued fields (title, date, type label, medium, description):
    first bound value in row order.
  - Images: ordered set union, duplicates collapsed.
  - Creator and location: an (identity, name) pair from one row. The first
    row carrying both wins, otherwise the first row carrying the identity
    with the default name "Unknown".

Defaults are then applied: title "Untitled", empty image list, type
classified from the merged label (Painting when missing or unrecognized).

FromRecord is the single-entity variant for an artwork fetched by a
separate lookup. It produces artworks with the same shape as Reconcile.

# Usage

	r := reconcile.New(reconcile.Options{Namespace: ns}, logger)
	catalog := r.Reconcile(rows)
	for _, a := range catalog.Artworks() {
	    fmt.Println(a.URI, a.Title)
	}
*/
package reconcile
