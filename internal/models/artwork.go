// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

package models

import "strings"

// Field defaults applied when a graph query leaves a value unbound.
const (
	DefaultTitle     = "Untitled"
	DefaultAgentName = "Unknown"
	DefaultPlaceName = "Unknown"
)

// AgentRole is the kind of agent that carried out a production event.
// Clients branch on the serialized value, so both values are part of the
// wire vocabulary.
type AgentRole string

const (
	// AgentPerson is an individual artist. Reconciled artists always carry
	// this role.
	AgentPerson AgentRole = "Person"
	// AgentOrganization is a workshop, studio or other collective. Reserved:
	// the bulk binding contract has no agent type variable, so nothing
	// assigns it until one is added.
	AgentOrganization AgentRole = "Organization"
)

// Agent is the creator of an artwork.
type Agent struct {
	URI  string    `json:"uri"`
	Name string    `json:"name"`
	Role AgentRole `json:"type"`
}

// Location is the place a production event took place at.
type Location struct {
	URI  string `json:"uri"`
	Name string `json:"name"`
}

// Artwork is the canonical, reconciled description of one catalog object.
// Instances are built once per request and never mutated afterwards.
type Artwork struct {
	// URI is the identity of the artwork. Equality is by URI only.
	URI string `json:"uri"`

	// Title is the display title, DefaultTitle when none was recorded.
	Title string `json:"title"`

	// AlternateTitle holds the native-language title when known.
	AlternateTitle *string `json:"alternate_title,omitempty"`

	// Images is an ordered set of image URLs. Never nil once reconciled.
	Images []string `json:"images"`

	// Artist is nil when no production event names a creator.
	Artist *Agent `json:"artist,omitempty"`

	// Location is nil when no production event names a place.
	Location *Location `json:"current_location,omitempty"`

	// CreationDate is the raw time-span value, possibly partial or year-only.
	CreationDate *string `json:"creation_date,omitempty"`

	// Type is always a defined enumeration value.
	Type ArtworkType `json:"artwork_type"`

	Medium      *string `json:"medium,omitempty"`
	Description *string `json:"description,omitempty"`

	// LocalHeritage is derived from URI at construction time.
	LocalHeritage bool `json:"local_heritage"`
}

// HasArtist reports whether the artwork has a creator with an identity.
func (a *Artwork) HasArtist() bool {
	return a != nil && a.Artist != nil && a.Artist.URI != ""
}

// HasLocation reports whether the artwork has a location with an identity.
func (a *Artwork) HasLocation() bool {
	return a != nil && a.Location != nil && a.Location.URI != ""
}

// IsLocalHeritage reports whether uri belongs to the local catalog namespace.
// An empty namespace never matches.
func IsLocalHeritage(uri, namespace string) bool {
	if namespace == "" {
		return false
	}
	return strings.HasPrefix(uri, namespace)
}

// StringPtr returns a pointer to a trimmed copy of s, or nil when s is blank.
func StringPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// StringValue dereferences p, returning "" for nil.
func StringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
