package extract

import (
	"testing"
	"time"

	"github.com/hyst16/HuskerFB-Schedule/internal/schedule"
)

func TestMergeFirstMatchWins(t *testing.T) {
	e := testExtractor()
	games := []*schedule.Game{{
		OpponentName: "Cincinnati",
		OpponentSlug: "cincinnati",
		VA:           schedule.MarkerVs,
	}}
	fragments := []Fragment{
		{OpponentName: "Cincinnati Bearcats", LogoURL: "https://x/first.png"},
		{OpponentName: "Cincinnati", LogoURL: "https://x/second.png"},
	}

	e.merge(games, fragments, nil)

	if games[0].OpponentName != "Cincinnati Bearcats" {
		t.Errorf("opponent = %q", games[0].OpponentName)
	}
	if games[0].OpponentLogo != "https://x/first.png" {
		t.Errorf("logo = %q, expected the first matching fragment", games[0].OpponentLogo)
	}
}

func TestMergeRecomputesStadiumSlug(t *testing.T) {
	e := testExtractor()
	aliases := schedule.Aliases{"GEHA Field at Arrowhead Stadium": "arrowhead"}
	g := &schedule.Game{
		OpponentName:  "Tennessee",
		OpponentSlug:  "tennessee",
		LocationCity:  "Kansas City, Mo.",
		LocationVenue: "Arrowhead Stadium",
		StadiumSlug:   "arrowhead-stadium-kansas-city",
	}
	fragments := []Fragment{{
		OpponentName: "Tennessee Volunteers",
		Venue:        "GEHA Field at Arrowhead Stadium",
	}}

	e.merge([]*schedule.Game{g}, fragments, aliases)

	if g.LocationVenue != "GEHA Field at Arrowhead Stadium" {
		t.Errorf("venue = %q", g.LocationVenue)
	}
	if g.LocationCity != "Kansas City, Mo." {
		t.Errorf("city = %q, expected table city kept when card has none", g.LocationCity)
	}
	if g.StadiumSlug != "arrowhead" {
		t.Errorf("stadium slug = %q, expected recompute through the alias table", g.StadiumSlug)
	}
}

func TestMergeLeavesUnmatchedGamesAlone(t *testing.T) {
	e := testExtractor()
	g := &schedule.Game{OpponentName: "Iowa", OpponentSlug: "iowa", TVNetwork: "cbs"}
	fragments := []Fragment{{OpponentName: "Cincinnati Bearcats", Broadcaster: "FS1"}}

	e.merge([]*schedule.Game{g}, fragments, nil)

	if g.OpponentName != "Iowa" || g.TVNetwork != "cbs" || g.OpponentLogo != "" {
		t.Errorf("unmatched game mutated: %+v", g)
	}
}

func TestMergeDoesNotTouchKickoff(t *testing.T) {
	e := testExtractor()
	g := &schedule.Game{OpponentName: "Cincinnati", OpponentSlug: "cincinnati"}
	g.SetKickoff(time.Date(2025, time.August, 30, 18, 0, 0, 0, time.UTC))
	fragments := []Fragment{{OpponentName: "Cincinnati Bearcats", Marker: schedule.MarkerAt}}

	e.merge([]*schedule.Game{g}, fragments, nil)

	if g.DateISO != "2025-08-30T18:00:00" {
		t.Errorf("date_iso = %q, fragments must not affect the kickoff", g.DateISO)
	}
	if g.VA != schedule.MarkerAt {
		t.Errorf("va = %q, expected the card marker applied", g.VA)
	}
}

func TestFuzzyMatch(t *testing.T) {
	tests := []struct {
		a, b     string
		expected bool
	}{
		{"Cincinnati", "Cincinnati Bearcats", true},
		{"Cincinnati Bearcats", "Cincinnati", true},
		{"cincinnati", "CINCINNATI", true},
		{"Iowa", "Iowa State", true},
		{"Iowa", "Ohio State", false},
		{"", "Cincinnati", false},
		{"Cincinnati", "", false},
	}
	for _, tt := range tests {
		if got := fuzzyMatch(tt.a, tt.b); got != tt.expected {
			t.Errorf("fuzzyMatch(%q, %q) = %v, expected %v", tt.a, tt.b, got, tt.expected)
		}
	}
}
