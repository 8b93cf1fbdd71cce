package schedule

import "sort"

// Finalize filters out non-game rows, orders the schedule, and computes the
// derived stadium sets. exists reports whether a local stadium image is
// already on disk for a slug; it may be nil, in which case every needed
// stadium is reported missing.
func Finalize(games []*Game, exists func(slug string) bool) (ordered []*Game, needed, missing []string) {
	ordered = make([]*Game, 0, len(games))
	for _, g := range games {
		if g.OpponentName == "" {
			continue
		}
		ordered = append(ordered, g)
	}

	Sort(ordered)
	needed = NeededStadiums(ordered)
	missing = MissingStadiums(needed, exists)
	return ordered, needed, missing
}

// Sort orders games by kickoff ascending. Games without a resolved date sort
// after every dated game, ordered among themselves by opponent name so the
// output is deterministic.
func Sort(games []*Game) {
	sort.SliceStable(games, func(i, j int) bool {
		a, b := games[i], games[j]
		switch {
		case a.Kickoff.IsZero() && b.Kickoff.IsZero():
			return a.OpponentName < b.OpponentName
		case a.Kickoff.IsZero():
			return false
		case b.Kickoff.IsZero():
			return true
		default:
			return a.Kickoff.Before(b.Kickoff)
		}
	})
}

// NeededStadiums returns the distinct stadium slugs referenced by the
// schedule, sorted for reproducible output.
func NeededStadiums(games []*Game) []string {
	seen := make(map[string]bool)
	needed := make([]string, 0, len(games))
	for _, g := range games {
		if g.StadiumSlug == "" || seen[g.StadiumSlug] {
			continue
		}
		seen[g.StadiumSlug] = true
		needed = append(needed, g.StadiumSlug)
	}
	sort.Strings(needed)
	return needed
}

// MissingStadiums returns the subset of needed slugs for which no local
// asset exists.
func MissingStadiums(needed []string, exists func(slug string) bool) []string {
	missing := make([]string, 0, len(needed))
	for _, slug := range needed {
		if exists == nil || !exists(slug) {
			missing = append(missing, slug)
		}
	}
	return missing
}
