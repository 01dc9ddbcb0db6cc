// Provenance - Cultural Heritage Catalog Reconciliation and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/provenance

package recommend

import (
	"context"
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/provenance/internal/models"
)

func newTestEngine(t *testing.T, cfg *Config) *Engine {
	t.Helper()
	e, err := NewEngine(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func strp(s string) *string { return &s }

type artOpt func(*models.Artwork)

func withArtist(uri, name string) artOpt {
	return func(a *models.Artwork) { a.Artist = &models.Agent{URI: uri, Name: name, Role: models.AgentPerson} }
}

func withLocation(uri, name string) artOpt {
	return func(a *models.Artwork) { a.Location = &models.Location{URI: uri, Name: name} }
}

func withDate(d string) artOpt {
	return func(a *models.Artwork) { a.CreationDate = strp(d) }
}

func withType(typ models.ArtworkType) artOpt {
	return func(a *models.Artwork) { a.Type = typ }
}

func withMedium(m string) artOpt {
	return func(a *models.Artwork) { a.Medium = strp(m) }
}

func artwork(uri string, opts ...artOpt) *models.Artwork {
	a := &models.Artwork{URI: uri, Title: models.DefaultTitle, Images: []string{}, Type: models.ArtworkPainting}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func uris(recs []models.Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Artwork.URI
	}
	return out
}

func TestNewEngine(t *testing.T) {
	t.Run("nil config uses defaults", func(t *testing.T) {
		e := newTestEngine(t, nil)
		if e.Config().PeriodWindowYears != 50 {
			t.Errorf("PeriodWindowYears = %v, want 50", e.Config().PeriodWindowYears)
		}
	})

	t.Run("invalid config is rejected", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.PeriodWindowYears = -1
		if _, err := NewEngine(cfg, zerolog.Nop()); err == nil {
			t.Error("NewEngine() = nil error, want error")
		}
	})

	t.Run("config is copied", func(t *testing.T) {
		cfg := DefaultConfig()
		e := newTestEngine(t, cfg)
		cfg.PeriodWindowYears = 1
		if e.Config().PeriodWindowYears != 50 {
			t.Error("engine config changed after construction")
		}
	})
}

func TestRecommend_EmptyInputs(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	ctx := context.Background()
	target := artwork("urn:t")

	tests := []struct {
		name string
		req  Request
	}{
		{"nil target", Request{Candidates: []*models.Artwork{artwork("urn:a")}, Criteria: []string{"type"}}},
		{"nil candidates", Request{Target: target, Criteria: []string{"type"}}},
		{"empty candidates", Request{Target: target, Candidates: []*models.Artwork{}, Criteria: []string{"type"}}},
		{"only the target", Request{Target: target, Candidates: []*models.Artwork{target}, Criteria: []string{"type"}}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := e.Recommend(ctx, tt.req)
			if got == nil {
				t.Fatal("Recommend returned nil, want empty slice")
			}
			if len(got) != 0 {
				t.Errorf("Recommend returned %d results, want 0", len(got))
			}
		})
	}
}

func TestRecommend_SelfExclusion(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	target := artwork("urn:t", withArtist("urn:artist", "A"))
	// A separately built copy with the same identity must also be excluded.
	clone := artwork("urn:t", withArtist("urn:artist", "A"))

	recs := e.Recommend(context.Background(), Request{
		Target:     target,
		Candidates: []*models.Artwork{artwork("urn:a"), target, clone, artwork("urn:b", withArtist("urn:artist", "A"))},
		Criteria:   []string{"artist", "type"},
		MaxResults: 10,
	})

	for _, r := range recs {
		if r.Artwork.URI == target.URI {
			t.Fatalf("target %s returned in its own recommendations", target.URI)
		}
	}
	if got := uris(recs); !reflect.DeepEqual(got, []string{"urn:b", "urn:a"}) {
		t.Errorf("order = %v, want [urn:b urn:a]", got)
	}
}

func TestRecommend_PeriodDecay(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	target := artwork("urn:t", withDate("1900"))

	tests := []struct {
		date string
		want float64
	}{
		{"1900", 1.0},
		{"1925", 0.5},
		{"1950", 0.0},
		{"2000", 0.0},
		{"1875-06-01", 0.5},
		{"undated", 0.0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.date, func(t *testing.T) {
			t.Parallel()
			recs := e.Recommend(context.Background(), Request{
				Target:     target,
				Candidates: []*models.Artwork{artwork("urn:c", withDate(tt.date))},
				Criteria:   []string{"period"},
				MaxResults: 1,
			})
			if len(recs) != 1 {
				t.Fatalf("got %d results, want 1", len(recs))
			}
			if math.Abs(recs[0].Score-tt.want) > 1e-9 {
				t.Errorf("period contribution for %s = %v, want %v", tt.date, recs[0].Score, tt.want)
			}
		})
	}
}

func TestRecommend_CriteriaContributions(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	target := artwork("urn:t",
		withArtist("urn:artist:1", "Grigorescu"),
		withLocation("urn:place:1", "Bucharest"),
		withMedium("Oil on canvas"),
		withType(models.ArtworkPainting),
	)

	tests := []struct {
		name      string
		candidate *models.Artwork
		criterion string
		want      float64
	}{
		{"same artist", artwork("urn:c", withArtist("urn:artist:1", "Other label")), "artist", 1},
		{"different artist", artwork("urn:c", withArtist("urn:artist:2", "Grigorescu")), "artist", 0},
		{"missing artist never matches", artwork("urn:c"), "artist", 0},
		{"same location", artwork("urn:c", withLocation("urn:place:1", "B")), "location", 1},
		{"missing location", artwork("urn:c"), "location", 0},
		{"medium ignores case and space", artwork("urn:c", withMedium("  oil ON canvas ")), "medium", 1},
		{"different medium", artwork("urn:c", withMedium("tempera")), "medium", 0},
		{"missing medium", artwork("urn:c"), "medium", 0},
		{"same type", artwork("urn:c", withType(models.ArtworkPainting)), "type", 1},
		{"different type", artwork("urn:c", withType(models.ArtworkSculpture)), "type", 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			recs := e.Recommend(context.Background(), Request{
				Target:     target,
				Candidates: []*models.Artwork{tt.candidate},
				Criteria:   []string{tt.criterion},
			})
			if len(recs) != 1 {
				t.Fatalf("got %d results, want 1", len(recs))
			}
			if recs[0].Score != tt.want {
				t.Errorf("score = %v, want %v", recs[0].Score, tt.want)
			}
			matched := len(recs[0].MatchedCriteria) == 1
			if matched != (tt.want == 1) {
				t.Errorf("matched = %v, want %v", recs[0].MatchedCriteria, tt.want == 1)
			}
		})
	}
}

func TestRecommend_ScoreIsMeanOfRequested(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	target := artwork("urn:t", withArtist("urn:a", "A"), withDate("1900"))
	cand := artwork("urn:c", withArtist("urn:a", "A"), withDate("1925"), withType(models.ArtworkSculpture))

	tests := []struct {
		criteria []string
		want     float64
	}{
		{[]string{"artist"}, 1.0},
		{[]string{"artist", "type"}, 0.5},
		{[]string{"artist", "period"}, 0.75},
		{[]string{"artist", "period", "type", "location"}, 0.375},
		{[]string{"artist", "colour"}, 1.0},
		{[]string{"artist", "artist", "type"}, 0.5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprint(tt.criteria), func(t *testing.T) {
			t.Parallel()
			recs := e.Recommend(context.Background(), Request{
				Target:     target,
				Candidates: []*models.Artwork{cand},
				Criteria:   tt.criteria,
			})
			if len(recs) != 1 {
				t.Fatalf("got %d results, want 1", len(recs))
			}
			if math.Abs(recs[0].Score-tt.want) > 1e-9 {
				t.Errorf("score = %v, want %v", recs[0].Score, tt.want)
			}
		})
	}
}

func TestRecommend_NoRecognizedCriteria(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	target := artwork("urn:t", withArtist("urn:a", "A"))

	recs := e.Recommend(context.Background(), Request{
		Target:     target,
		Candidates: []*models.Artwork{artwork("urn:b", withArtist("urn:a", "A")), artwork("urn:a")},
		Criteria:   []string{"Artist", "colour"},
	})

	if got := uris(recs); !reflect.DeepEqual(got, []string{"urn:a", "urn:b"}) {
		t.Errorf("order = %v, want URI order", got)
	}
	for _, r := range recs {
		if r.Score != 0 || len(r.MatchedCriteria) != 0 {
			t.Errorf("%s score=%v matched=%v, want zero", r.Artwork.URI, r.Score, r.MatchedCriteria)
		}
	}
}

func TestRecommend_CapRespected(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	target := artwork("urn:t", withDate("1900"))

	// Ten candidates with distinct period scores: 1900, 1904, ..., 1936.
	candidates := make([]*models.Artwork, 0, 10)
	for i := 9; i >= 0; i-- {
		candidates = append(candidates, artwork(fmt.Sprintf("urn:c%d", i), withDate(fmt.Sprintf("%d", 1900+4*i))))
	}

	recs := e.Recommend(context.Background(), Request{
		Target:     target,
		Candidates: candidates,
		Criteria:   []string{"period"},
		MaxResults: 3,
	})

	if got := uris(recs); !reflect.DeepEqual(got, []string{"urn:c0", "urn:c1", "urn:c2"}) {
		t.Errorf("top 3 = %v, want [urn:c0 urn:c1 urn:c2]", got)
	}
}

func TestRecommend_MaxResultsDefaults(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	target := artwork("urn:t")
	candidates := make([]*models.Artwork, 0, 80)
	for i := 0; i < 80; i++ {
		candidates = append(candidates, artwork(fmt.Sprintf("urn:c%02d", i)))
	}

	tests := []struct {
		name       string
		maxResults int
		want       int
	}{
		{"zero uses default", 0, 10},
		{"negative uses default", -3, 10},
		{"above cap is clamped", 500, 50},
		{"within range", 7, 7},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			recs := e.Recommend(context.Background(), Request{
				Target:     target,
				Candidates: candidates,
				Criteria:   []string{"type"},
				MaxResults: tt.maxResults,
			})
			if len(recs) != tt.want {
				t.Errorf("len = %d, want %d", len(recs), tt.want)
			}
		})
	}
}

func TestRecommend_BoundsAndOrdering(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	target := artwork("urn:t",
		withArtist("urn:a1", "A"),
		withLocation("urn:l1", "L"),
		withDate("1880"),
		withMedium("oil"),
	)

	candidates := []*models.Artwork{
		artwork("urn:z", withArtist("urn:a1", "A"), withLocation("urn:l1", "L"), withDate("1880"), withMedium("oil")),
		artwork("urn:y", withArtist("urn:a2", "B"), withDate("1905")),
		artwork("urn:x", withType(models.ArtworkCeramic)),
		artwork("urn:w", withLocation("urn:l1", "L"), withDate("1870")),
		artwork("urn:v", withArtist("urn:a1", "A"), withDate("not a date")),
		artwork("urn:u", withType(models.ArtworkCeramic)),
	}

	recs := e.Recommend(context.Background(), Request{
		Target:     target,
		Candidates: candidates,
		Criteria:   []string{"artist", "type", "period", "location", "medium"},
		MaxResults: 50,
	})

	if len(recs) != len(candidates) {
		t.Fatalf("len = %d, want %d", len(recs), len(candidates))
	}
	for i, r := range recs {
		if r.Score < 0 || r.Score > 1 {
			t.Errorf("score[%d] = %v out of [0,1]", i, r.Score)
		}
		if i > 0 && r.Score > recs[i-1].Score {
			t.Errorf("score increased at %d: %v > %v", i, r.Score, recs[i-1].Score)
		}
		if i > 0 && r.Score == recs[i-1].Score && r.Artwork.URI < recs[i-1].Artwork.URI {
			t.Errorf("tie not broken by URI at %d: %s before %s", i, recs[i-1].Artwork.URI, r.Artwork.URI)
		}
	}
	if recs[0].Artwork.URI != "urn:z" || recs[0].Score != 1 {
		t.Errorf("best = %s (%v), want urn:z (1)", recs[0].Artwork.URI, recs[0].Score)
	}
	// Both ceramics score zero and share the tail in URI order.
	tail := uris(recs[len(recs)-2:])
	if !reflect.DeepEqual(tail, []string{"urn:u", "urn:x"}) {
		t.Errorf("tail = %v, want [urn:u urn:x]", tail)
	}
}

func TestRecommend_ZeroScoresOnlyFillRemainingSlots(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	target := artwork("urn:t", withArtist("urn:a", "A"))

	candidates := []*models.Artwork{
		artwork("urn:0-zero"),
		artwork("urn:1-zero"),
		artwork("urn:9-match", withArtist("urn:a", "A")),
		artwork("urn:8-match", withArtist("urn:a", "A")),
	}

	recs := e.Recommend(context.Background(), Request{
		Target: target, Candidates: candidates, Criteria: []string{"artist"}, MaxResults: 2,
	})
	if got := uris(recs); !reflect.DeepEqual(got, []string{"urn:8-match", "urn:9-match"}) {
		t.Errorf("got %v, want only positive scorers", got)
	}

	recs = e.Recommend(context.Background(), Request{
		Target: target, Candidates: candidates, Criteria: []string{"artist"}, MaxResults: 3,
	})
	if got := uris(recs); !reflect.DeepEqual(got, []string{"urn:8-match", "urn:9-match", "urn:0-zero"}) {
		t.Errorf("got %v, want one zero scorer in the free slot", got)
	}
}

func TestRecommend_DuplicateAndNilCandidates(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	target := artwork("urn:t", withArtist("urn:a", "A"))
	first := artwork("urn:dup", withArtist("urn:a", "A"))
	second := artwork("urn:dup")

	recs := e.Recommend(context.Background(), Request{
		Target:     target,
		Candidates: []*models.Artwork{nil, first, second, nil},
		Criteria:   []string{"artist"},
	})

	if len(recs) != 1 {
		t.Fatalf("len = %d, want 1", len(recs))
	}
	if recs[0].Artwork != first {
		t.Error("first occurrence of a duplicate URI should be kept")
	}
}

func TestRecommend_Reasons(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	target := artwork("urn:t",
		withArtist("urn:a", "Nicolae Grigorescu"),
		withLocation("urn:l", "Bucharest"),
		withDate("1880"),
		withMedium("oil on canvas"),
	)
	cand := artwork("urn:c",
		withArtist("urn:a", "Nicolae Grigorescu"),
		withLocation("urn:l", "Bucharest"),
		withDate("1890"),
		withMedium("Oil on canvas"),
	)

	recs := e.Recommend(context.Background(), Request{
		Target:     target,
		Candidates: []*models.Artwork{cand},
		Criteria:   []string{"artist", "period", "type", "location", "medium"},
	})
	if len(recs) != 1 {
		t.Fatalf("len = %d, want 1", len(recs))
	}

	r := recs[0]
	wantMatched := []models.Criterion{
		models.CriterionArtist, models.CriterionPeriod, models.CriterionType,
		models.CriterionLocation, models.CriterionMedium,
	}
	if !reflect.DeepEqual(r.MatchedCriteria, wantMatched) {
		t.Errorf("MatchedCriteria = %v, want %v", r.MatchedCriteria, wantMatched)
	}
	wantReasons := []string{
		"Same artist: Nicolae Grigorescu",
		"Created within 10 years",
		"Same type: painting",
		"Same location: Bucharest",
		"Same medium: Oil on canvas",
	}
	if !reflect.DeepEqual(r.Reasons, wantReasons) {
		t.Errorf("Reasons = %q, want %q", r.Reasons, wantReasons)
	}
	if r.Explanation != "Same artist: Nicolae Grigorescu; Created within 10 years; Same type: painting; Same location: Bucharest; Same medium: Oil on canvas" {
		t.Errorf("Explanation = %q", r.Explanation)
	}
}

func TestRecommend_UnmatchedHasEmptyReasons(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	recs := e.Recommend(context.Background(), Request{
		Target:     artwork("urn:t", withDate("1900")),
		Candidates: []*models.Artwork{artwork("urn:c", withDate("1990"), withType(models.ArtworkPrint))},
		Criteria:   []string{"period", "type"},
	})
	if len(recs) != 1 {
		t.Fatalf("len = %d, want 1", len(recs))
	}
	if recs[0].MatchedCriteria == nil || len(recs[0].MatchedCriteria) != 0 {
		t.Errorf("MatchedCriteria = %v, want empty non-nil", recs[0].MatchedCriteria)
	}
	if recs[0].Reasons == nil || recs[0].Explanation != "" {
		t.Errorf("Reasons = %v Explanation = %q", recs[0].Reasons, recs[0].Explanation)
	}
}

func TestRecommend_InputsNotMutated(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	target := artwork("urn:t", withDate("1900"))
	candidates := []*models.Artwork{artwork("urn:b", withDate("1990")), artwork("urn:a", withDate("1900"))}
	criteria := []string{"period", "bogus"}

	_ = e.Recommend(context.Background(), Request{Target: target, Candidates: candidates, Criteria: criteria})

	if candidates[0].URI != "urn:b" || candidates[1].URI != "urn:a" {
		t.Error("candidate slice was reordered")
	}
	if !reflect.DeepEqual(criteria, []string{"period", "bogus"}) {
		t.Error("criteria slice was modified")
	}
}
