// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

package models

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestArtworkType_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ      ArtworkType
		expected string
	}{
		{ArtworkPainting, "painting"},
		{ArtworkSculpture, "sculpture"},
		{ArtworkDrawing, "drawing"},
		{ArtworkPhotograph, "photograph"},
		{ArtworkPrint, "print"},
		{ArtworkTextile, "textile"},
		{ArtworkCeramic, "ceramic"},
		{ArtworkOther, "other"},
		{ArtworkType(99), "painting"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.expected {
			t.Errorf("ArtworkType(%d).String() = %q, want %q", tt.typ, got, tt.expected)
		}
	}
}

func TestClassifyType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		label       string
		wantType    ArtworkType
		wantOutcome ClassificationOutcome
	}{
		{"empty label is missing", "", DefaultArtworkType, ClassificationMissing},
		{"blank label is missing", "   ", DefaultArtworkType, ClassificationMissing},
		{"unrecognized label", "xyz-unrecognized", DefaultArtworkType, ClassificationUnmatched},
		{"sculpture keyword", "Sculpture", ArtworkSculpture, ClassificationMatched},
		{"keyword wins over other words", "oil sculpture", ArtworkSculpture, ClassificationMatched},
		{"drawing prefix", "Drawings and studies", ArtworkDrawing, ClassificationMatched},
		{"photograph", "Photograph", ArtworkPhotograph, ClassificationMatched},
		{"engraving", "copper ENGRAVING", ArtworkPrint, ClassificationMatched},
		{"tapestry", "Flemish tapestry", ArtworkTextile, ClassificationMatched},
		{"porcelain", "porcelain vase", ArtworkCeramic, ClassificationMatched},
		{"painting", "Painting", ArtworkPainting, ClassificationMatched},
		{"icon", "Icon on wood", ArtworkPainting, ClassificationMatched},
		{"bust at word start", "Portrait bust, marble", ArtworkSculpture, ClassificationMatched},
		{"bust inside a word", "robust oil painting", ArtworkPainting, ClassificationMatched},
		{"icon inside a word", "silicone cast", DefaultArtworkType, ClassificationUnmatched},
		{"icon after punctuation", "gilded (icon)", ArtworkPainting, ClassificationMatched},
		{"table order: sculpture before painting", "painted sculpture", ArtworkSculpture, ClassificationMatched},
		{"table order: print before textile", "printed textile", ArtworkPrint, ClassificationMatched},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ClassifyType(tt.label)
			if got.Type != tt.wantType {
				t.Errorf("ClassifyType(%q).Type = %v, want %v", tt.label, got.Type, tt.wantType)
			}
			if got.Outcome != tt.wantOutcome {
				t.Errorf("ClassifyType(%q).Outcome = %q, want %q", tt.label, got.Outcome, tt.wantOutcome)
			}
			if tt.wantOutcome != ClassificationMatched && got.Keyword != "" {
				t.Errorf("ClassifyType(%q).Keyword = %q, want empty", tt.label, got.Keyword)
			}
		})
	}
}

func TestArtworkTypeFromText_DefaultsAgree(t *testing.T) {
	t.Parallel()

	missing := ArtworkTypeFromText("")
	unmatched := ArtworkTypeFromText("xyz-unrecognized")
	if missing != unmatched {
		t.Errorf("missing label -> %v, unmatched label -> %v; want the same default", missing, unmatched)
	}
	if missing != DefaultArtworkType {
		t.Errorf("default = %v, want %v", missing, DefaultArtworkType)
	}
	if !missing.Valid() {
		t.Error("default type must be a valid enumeration value")
	}
}

func TestParseArtworkType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		want   ArtworkType
		wantOK bool
	}{
		{"sculpture", ArtworkSculpture, true},
		{" Ceramic ", ArtworkCeramic, true},
		{"other", ArtworkOther, true},
		{"bronze statue", DefaultArtworkType, false},
		{"", DefaultArtworkType, false},
	}
	for _, tt := range tests {
		got, ok := ParseArtworkType(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseArtworkType(%q) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestArtworkType_JSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(ArtworkTextile)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"textile"` {
		t.Errorf("marshal = %s, want \"textile\"", data)
	}

	tests := []struct {
		input string
		want  ArtworkType
	}{
		{`"ceramic"`, ArtworkCeramic},
		{`"Other"`, ArtworkOther},
		{`"bronze statue"`, ArtworkSculpture},
		{`"mystery"`, DefaultArtworkType},
	}
	for _, tt := range tests {
		var got ArtworkType
		if err := json.Unmarshal([]byte(tt.input), &got); err != nil {
			t.Fatalf("unmarshal %s: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("unmarshal %s = %v, want %v", tt.input, got, tt.want)
		}
	}

	var bad ArtworkType
	if err := json.Unmarshal([]byte(`42`), &bad); err == nil {
		t.Error("expected error for non-string type")
	}
}
