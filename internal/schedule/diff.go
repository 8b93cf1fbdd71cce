package schedule

import "sort"

// Change records a field-level difference detected between two runs for the
// same opponent.
type Change struct {
	OpponentName string `json:"opponent_name"`
	OpponentSlug string `json:"opponent_slug"`
	Field        string `json:"field"` // "date", "time", "tv", "stadium"
	OldValue     string `json:"old_value"`
	NewValue     string `json:"new_value"`
}

// DiffResult contains games added since the previous run and field changes
// to games present in both.
type DiffResult struct {
	Added   []*Game  `json:"added"`
	Changes []Change `json:"changes"`
}

// Changed reports whether the diff carries anything worth announcing.
func (d *DiffResult) Changed() bool {
	return len(d.Added) > 0 || len(d.Changes) > 0
}

// Diff compares the current schedule against the previously persisted one.
// Games are keyed by opponent slug, which is stable across runs even when
// dates or times shift. previous may be nil (first run), in which case every
// current game is new.
func Diff(previous, current []*Game) *DiffResult {
	result := &DiffResult{
		Added:   make([]*Game, 0),
		Changes: make([]Change, 0),
	}

	prevBySlug := make(map[string]*Game, len(previous))
	for _, g := range previous {
		if g.OpponentSlug != "" {
			prevBySlug[g.OpponentSlug] = g
		}
	}

	for _, g := range current {
		old, ok := prevBySlug[g.OpponentSlug]
		if !ok {
			result.Added = append(result.Added, g)
			continue
		}
		result.Changes = append(result.Changes, detectChanges(old, g)...)
	}

	sort.SliceStable(result.Added, func(i, j int) bool {
		return result.Added[i].OpponentName < result.Added[j].OpponentName
	})

	return result
}

func detectChanges(old, current *Game) []Change {
	var changes []Change

	record := func(field, oldVal, newVal string) {
		if oldVal == newVal {
			return
		}
		changes = append(changes, Change{
			OpponentName: current.OpponentName,
			OpponentSlug: current.OpponentSlug,
			Field:        field,
			OldValue:     oldVal,
			NewValue:     newVal,
		})
	}

	record("date", old.DateStr, current.DateStr)
	record("time", old.TimeLocal, current.TimeLocal)
	record("tv", old.TVNetwork, current.TVNetwork)
	record("stadium", old.StadiumSlug, current.StadiumSlug)

	return changes
}
