// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

package models

import (
	"strings"

	"github.com/goccy/go-json"
)

// ArtworkType is the closed classification of an artwork's form.
type ArtworkType int

const (
	// ArtworkPainting covers paintings, icons and frescoes.
	ArtworkPainting ArtworkType = iota
	// ArtworkSculpture covers sculptures, statues and busts.
	ArtworkSculpture
	// ArtworkDrawing covers drawings and sketches.
	ArtworkDrawing
	// ArtworkPhotograph covers photographs.
	ArtworkPhotograph
	// ArtworkPrint covers prints, engravings, etchings and lithographs.
	ArtworkPrint
	// ArtworkTextile covers textiles, tapestries and embroidery.
	ArtworkTextile
	// ArtworkCeramic covers ceramics, porcelain and pottery.
	ArtworkCeramic
	// ArtworkOther is the explicit catch-all bucket.
	ArtworkOther
)

// DefaultArtworkType is assigned when a type label is missing or unrecognized.
//
// NOTE: Painting rather than Other is inherited catalog behavior. It biases
// unlabeled objects toward paintings; see DESIGN.md before changing it.
const DefaultArtworkType = ArtworkPainting

// String returns the lower-case wire name of the type.
func (t ArtworkType) String() string {
	switch t {
	case ArtworkPainting:
		return "painting"
	case ArtworkSculpture:
		return "sculpture"
	case ArtworkDrawing:
		return "drawing"
	case ArtworkPhotograph:
		return "photograph"
	case ArtworkPrint:
		return "print"
	case ArtworkTextile:
		return "textile"
	case ArtworkCeramic:
		return "ceramic"
	case ArtworkOther:
		return "other"
	default:
		return DefaultArtworkType.String()
	}
}

// Valid reports whether t is one of the enumerated values.
func (t ArtworkType) Valid() bool {
	return t >= ArtworkPainting && t <= ArtworkOther
}

// MarshalJSON encodes the type by name.
func (t ArtworkType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a type name. Names that are not exact enumeration
// values go through the classifier so the result is always defined.
func (t *ArtworkType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if parsed, ok := ParseArtworkType(s); ok {
		*t = parsed
		return nil
	}
	*t = ArtworkTypeFromText(s)
	return nil
}

// ParseArtworkType resolves an exact wire name such as "sculpture",
// ignoring case and surrounding space. Unlike ArtworkTypeFromText it does not
// classify free text.
func ParseArtworkType(s string) (ArtworkType, bool) {
	for t := ArtworkPainting; t <= ArtworkOther; t++ {
		if t.String() == strings.ToLower(strings.TrimSpace(s)) {
			return t, true
		}
	}
	return DefaultArtworkType, false
}

// ClassificationOutcome tells how a label was resolved.
type ClassificationOutcome string

const (
	// ClassificationMatched means a keyword in the label selected the type.
	ClassificationMatched ClassificationOutcome = "matched"
	// ClassificationUnmatched means a label was present but no keyword matched.
	ClassificationUnmatched ClassificationOutcome = "unmatched"
	// ClassificationMissing means no label was supplied.
	ClassificationMissing ClassificationOutcome = "missing"
)

// TypeClassification is the result of classifying a free-text type label.
type TypeClassification struct {
	Type    ArtworkType
	Outcome ClassificationOutcome
	// Keyword is the table keyword that matched, empty unless Outcome is matched.
	Keyword string
}

type typeKeyword struct {
	keyword string
	typ     ArtworkType
	// wordStart restricts the match to the start of a word, for short
	// keywords that occur inside unrelated words ("robust", "silicone").
	wordStart bool
}

// typeKeywords is scanned in order; the first keyword contained in the
// lower-cased label wins. Order is significant: "oil sculpture" must resolve
// to Sculpture before any painting keyword is considered.
var typeKeywords = []typeKeyword{
	{"sculpture", ArtworkSculpture, false},
	{"statue", ArtworkSculpture, false},
	{"bust", ArtworkSculpture, true},
	{"draw", ArtworkDrawing, false},
	{"sketch", ArtworkDrawing, false},
	{"photo", ArtworkPhotograph, false},
	{"print", ArtworkPrint, false},
	{"engraving", ArtworkPrint, false},
	{"etching", ArtworkPrint, false},
	{"lithograph", ArtworkPrint, false},
	{"textile", ArtworkTextile, false},
	{"tapestry", ArtworkTextile, false},
	{"embroider", ArtworkTextile, false},
	{"ceramic", ArtworkCeramic, false},
	{"porcelain", ArtworkCeramic, false},
	{"pottery", ArtworkCeramic, false},
	{"paint", ArtworkPainting, false},
	{"icon", ArtworkPainting, true},
	{"fresco", ArtworkPainting, false},
}

// ClassifyType maps a free-text label onto ArtworkType and reports how the
// decision was made. An empty or blank label counts as missing.
func ClassifyType(label string) TypeClassification {
	normalized := strings.ToLower(strings.TrimSpace(label))
	if normalized == "" {
		return TypeClassification{Type: DefaultArtworkType, Outcome: ClassificationMissing}
	}

	for _, kw := range typeKeywords {
		if kw.matches(normalized) {
			return TypeClassification{Type: kw.typ, Outcome: ClassificationMatched, Keyword: kw.keyword}
		}
	}

	return TypeClassification{Type: DefaultArtworkType, Outcome: ClassificationUnmatched}
}

func (kw typeKeyword) matches(label string) bool {
	if !kw.wordStart {
		return strings.Contains(label, kw.keyword)
	}
	for i := 0; i+len(kw.keyword) <= len(label); {
		j := strings.Index(label[i:], kw.keyword)
		if j < 0 {
			return false
		}
		at := i + j
		if at == 0 || !isLetter(label[at-1]) {
			return true
		}
		i = at + 1
	}
	return false
}

// isLetter reports whether b is an ASCII letter. Non-ASCII bytes count as
// letters so that accented words are not split.
func isLetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || b >= 0x80
}

// ArtworkTypeFromText returns the artwork type for a label, falling back to
// DefaultArtworkType for missing or unrecognized labels.
func ArtworkTypeFromText(label string) ArtworkType {
	return ClassifyType(label).Type
}
