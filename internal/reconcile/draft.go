// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

package reconcile

// ref is an (identity, name) pair taken from one binding.
type ref struct {
	uri  string
	name string
}

// offer considers a pair from the next binding. The first pair carrying
// both identity and name wins; until one is seen, the first pair carrying
// an identity is held.
func (p *ref) offer(uri, name string) {
	if uri == "" {
		return
	}
	if p.uri == "" || (p.name == "" && name != "") {
		p.uri = uri
		p.name = name
	}
}

// draft accumulates the bound values of one artwork group.
type draft struct {
	uri            string
	title          string
	alternateTitle string
	date           string
	typeLabel      string
	medium         string
	description    string

	images    []string
	seenImage map[string]struct{}

	artist   ref
	location ref
}

func newDraft(uri string) *draft {
	return &draft{uri: uri}
}

// merge folds one binding into the draft.
func (d *draft) merge(b Binding) {
	first(&d.title, b.Get(VarTitle))
	first(&d.date, b.Get(VarDate))
	first(&d.typeLabel, b.Get(VarTypeLabel))
	first(&d.medium, b.Get(VarMediumLabel))
	first(&d.description, b.Get(VarDescription))

	d.addImage(b.Get(VarImageURL))

	d.artist.offer(b.Get(VarArtist), b.Get(VarArtistName))
	d.location.offer(b.Get(VarLocation), b.Get(VarLocationName))
}

func (d *draft) addImage(url string) {
	if url == "" {
		return
	}
	if d.seenImage == nil {
		d.seenImage = make(map[string]struct{})
	}
	if _, dup := d.seenImage[url]; dup {
		return
	}
	d.seenImage[url] = struct{}{}
	d.images = append(d.images, url)
}

// first stores v in dst unless dst already holds a value.
func first(dst *string, v string) {
	if *dst == "" && v != "" {
		*dst = v
	}
}
