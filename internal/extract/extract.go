package extract

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/hyst16/HuskerFB-Schedule/internal/schedule"
)

// Extractor parses schedule markup into game records.
type Extractor struct {
	// HomeTeam and HomeCity identify the home program. A "vs." game whose
	// location is not the home city is treated as neutral-site.
	HomeTeam string
	HomeCity string

	// Now anchors year inference. Zero means time.Now at parse time; tests
	// pin it for deterministic output.
	Now time.Time
}

// New returns an Extractor configured for the Nebraska schedule page.
func New() *Extractor {
	return &Extractor{
		HomeTeam: "nebraska",
		HomeCity: "lincoln",
	}
}

type strategy func(doc *goquery.Document, aliases schedule.Aliases) []*schedule.Game

// Parse extracts the full schedule from raw markup. Base rows come from the
// first strategy that finds any; card fragments are then overlaid. The only
// error is unreadable markup; a page with no recognizable schedule yields an
// empty slice, since the schedule may legitimately be empty.
func (e *Extractor) Parse(html string, aliases schedule.Aliases) ([]*schedule.Game, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing markup: %w", err)
	}

	var games []*schedule.Game
	for _, s := range []strategy{e.parseTable, e.parseLegacyRows} {
		if games = s(doc, aliases); len(games) > 0 {
			break
		}
	}

	fragments := e.parseCards(doc)
	e.merge(games, fragments, aliases)

	kept := games[:0]
	for _, g := range games {
		if g.OpponentName != "" {
			kept = append(kept, g)
		}
	}
	return kept, nil
}

// Fragments exposes card extraction on its own, for the logo probe tool.
func (e *Extractor) Fragments(html string) ([]Fragment, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing markup: %w", err)
	}
	return e.parseCards(doc), nil
}

func (e *Extractor) now() time.Time {
	if !e.Now.IsZero() {
		return e.Now
	}
	return time.Now()
}

// site applies the home/away/neutral convention: "at" games are away, "vs."
// games in the home city are home, and a named "vs." game anywhere else is a
// neutral-site game.
func (e *Extractor) site(marker, city string) string {
	if marker == schedule.MarkerAt {
		return schedule.SiteAway
	}
	if strings.Contains(strings.ToLower(city), e.HomeCity) {
		return schedule.SiteHome
	}
	return schedule.SiteNeutral
}

var (
	wsRe       = regexp.MustCompile(`\s+`)
	locSplitRe = regexp.MustCompile(`\s{2,}|\|`)
)

// cleanText collapses whitespace runs, including the newlines goquery keeps
// from the markup.
func cleanText(s string) string {
	return strings.TrimSpace(wsRe.ReplaceAllString(s, " "))
}

// splitLocation separates "City, ST / Venue Name" into its halves. Older
// markup separates the pair with wide whitespace or a pipe instead; a single
// token is taken as the city.
func splitLocation(text string) (city, venue string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ""
	}
	if c, v, ok := strings.Cut(text, " / "); ok {
		return cleanText(c), cleanText(v)
	}

	var parts []string
	for _, p := range locSplitRe.Split(text, -1) {
		if p = cleanText(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) >= 2 {
		return parts[0], parts[len(parts)-1]
	}
	return cleanText(text), ""
}
