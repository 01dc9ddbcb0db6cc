// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

package recommend

import (
	"regexp"
	"strconv"
)

// yearPattern matches the first run of three or four digits that is not
// part of a longer number.
var yearPattern = regexp.MustCompile(`(?:^|\D)(\d{3,4})(?:\D|$)`)

// signedYearPattern matches a value that opens with a signed year, as in
// xsd:gYear "-0500". A '-' anywhere else is a separator.
var signedYearPattern = regexp.MustCompile(`^\s*-\d{3,4}(?:\D|$)`)

// eraBCPattern matches a trailing "BC", "B.C.", "BCE" or "B.C.E." marker.
var eraBCPattern = regexp.MustCompile(`(?i)(?:^|[^a-z])b\.?\s*c\.?(?:\s*e\.?)?\s*$`)

// ParseYear extracts a numeric year from a creation date value.
//
// Accepted shapes include "1885", "1885-03-01", "1885-03-01T00:00:00Z",
// "ca. 1850", "-0500" and "c. 500 BC". The second return is false when no
// year can be found, in which case the period criterion contributes nothing.
func ParseYear(date string) (int, bool) {
	m := yearPattern.FindStringSubmatch(date)
	if m == nil {
		return 0, false
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	if signedYearPattern.MatchString(date) || eraBCPattern.MatchString(date) {
		year = -year
	}
	return year, true
}
