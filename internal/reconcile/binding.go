// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

package reconcile

import "strings"

// Variable names of the bulk artwork query. A binding may carry any subset of
// them; only VarArtwork is required.
const (
	VarArtwork      = "artwork"
	VarTitle        = "title"
	VarImageURL     = "imageURL"
	VarArtist       = "artist"
	VarArtistName   = "artistName"
	VarLocation     = "location"
	VarLocationName = "locationName"
	VarDate         = "date"
	VarTypeLabel    = "typeLabel"
	VarMediumLabel  = "mediumLabel"
	VarDescription  = "desc"
)

// Variables lists every variable name the reconciler reads.
var Variables = []string{
	VarArtwork,
	VarTitle,
	VarImageURL,
	VarArtist,
	VarArtistName,
	VarLocation,
	VarLocationName,
	VarDate,
	VarTypeLabel,
	VarMediumLabel,
	VarDescription,
}

var knownVariables = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Variables))
	for _, v := range Variables {
		m[v] = struct{}{}
	}
	return m
}()

// IsVariable reports whether name is part of the binding contract.
func IsVariable(name string) bool {
	_, ok := knownVariables[name]
	return ok
}

// Binding is one graph-query result row: variable name to value.
// A missing key and a blank value both mean the variable is unbound.
type Binding map[string]string

// Value returns the trimmed value of name and whether it is bound.
func (b Binding) Value(name string) (string, bool) {
	v := strings.TrimSpace(b[name])
	return v, v != ""
}

// Get returns the trimmed value of name, or "" when unbound.
func (b Binding) Get(name string) string {
	v, _ := b.Value(name)
	return v
}
