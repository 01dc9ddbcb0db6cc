// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

/*
Package catalog wires the graph-store boundary to the reconciler and the
recommendation engine.

A recommendation request runs in this order:

 1. Apply default criteria and max results, then validate the request.
 2. Fetch at most QueryLimit bulk rows from the RowSource.
 3. Reconcile the rows into one artwork per identity.
 4. Resolve the target from the reconciled set, or through the
    EntityLookup when the bulk rows do not contain it.
 5. Rank the reconciled set against the target.

The EntityLookup is wrapped in a sony/gobreaker circuit breaker. A lookup
that reports ErrArtworkNotFound counts as a healthy answer; transport-level
failures count toward tripping the breaker. When the target cannot be
resolved at all, Recommend returns an empty list and no error.

FileRowSource and FileLookup read saved query output from disk and back the
command-line tool.
*/
package catalog
