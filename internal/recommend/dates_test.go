// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

package recommend

import "testing"

func TestParseYear(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		want   int
		wantOK bool
	}{
		{"1885", 1885, true},
		{"1885-03-01", 1885, true},
		{"1885-03-01T00:00:00Z", 1885, true},
		{"ca. 1850", 1850, true},
		{"c.1850-1860", 1850, true},
		{"01/02/1903", 1903, true},
		{"-0500", -500, true},
		{" -0500-01-01", -500, true},
		{"c. 500 BC", -500, true},
		{"500 B.C.", -500, true},
		{"480 bce", -480, true},
		{"circa-1850", 1850, true},
		{"1850-1860", 1850, true},
		{"850", 850, true},
		{"", 0, false},
		{"unknown", 0, false},
		{"5th century", 0, false},
		{"12345", 0, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseYear(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseYear(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseYear(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
