// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

package recommend

import (
	"fmt"
	"strings"

	"github.com/tomtom215/provenance/internal/models"
)

// explanationSeparator joins reasons into the explanation string.
const explanationSeparator = "; "

// reason builds the human-readable line for a matched criterion.
func reason(c models.Criterion, target, candidate subject) string {
	switch c {
	case models.CriterionArtist:
		return "Same artist: " + candidate.art.Artist.Name
	case models.CriterionType:
		return "Same type: " + candidate.art.Type.String()
	case models.CriterionLocation:
		return "Same location: " + candidate.art.Location.Name
	case models.CriterionMedium:
		return "Same medium: " + strings.TrimSpace(*candidate.art.Medium)
	case models.CriterionPeriod:
		diff := target.year - candidate.year
		if diff < 0 {
			diff = -diff
		}
		if diff == 0 {
			return "Created in the same year"
		}
		if diff == 1 {
			return "Created within 1 year"
		}
		return fmt.Sprintf("Created within %d years", diff)
	default:
		return ""
	}
}

func explain(reasons []string) string {
	return strings.Join(reasons, explanationSeparator)
}
