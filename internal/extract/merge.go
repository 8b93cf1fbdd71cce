package extract

import (
	"strings"

	"github.com/hyst16/HuskerFB-Schedule/internal/schedule"
)

// merge overlays card fragments onto base records. For each game the first
// fragment whose opponent name fuzzily matches wins; there is no scoring
// among candidates. Card data is treated as higher-fidelity for identity and
// location, and is the only source of logos and broadcasters.
func (e *Extractor) merge(games []*schedule.Game, fragments []Fragment, aliases schedule.Aliases) {
	for _, g := range games {
		for i := range fragments {
			f := &fragments[i]
			if !fuzzyMatch(g.OpponentName, f.OpponentName) {
				continue
			}
			applyFragment(g, f, aliases)
			break
		}
	}
}

func applyFragment(g *schedule.Game, f *Fragment, aliases schedule.Aliases) {
	if f.OpponentName != "" {
		g.OpponentName = f.OpponentName
		g.OpponentSlug = schedule.Slugify(f.OpponentName)
	}
	if f.Marker != "" {
		g.VA = f.Marker
	}
	if f.City != "" || f.Venue != "" {
		if f.City != "" {
			g.LocationCity = f.City
		}
		if f.Venue != "" {
			g.LocationVenue = f.Venue
		}
		// The card's location supersedes the table's, so the stadium slug is
		// recomputed, alias table included.
		g.StadiumSlug = schedule.VenueSlug(g.LocationVenue, g.LocationCity, aliases)
	}
	if f.LogoURL != "" {
		g.OpponentLogo = f.LogoURL
	}
	if tv := schedule.NormalizeTV(f.Broadcaster); tv != "" {
		g.TVNetwork = tv
	}
}

// fuzzyMatch reports whether two opponent names refer to the same program:
// case-insensitive substring containment in either direction, so the card's
// "Cincinnati Bearcats" matches the table's "Cincinnati".
func fuzzyMatch(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
