package extract

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"

	"github.com/hyst16/HuskerFB-Schedule/internal/schedule"
)

// Sidearm-era selectors, tried in order until one matches anything.
var legacyRowSelectors = []string{
	".sidearm-schedule-game",
	"li.schedule__list-item",
	"div.schedule_game",
}

var (
	legacyDateRe     = regexp.MustCompile(`(?i)(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+\d{1,2}`)
	legacyTimeRe     = regexp.MustCompile(`(?i)\d{1,2}:\d{2}\s*[ap]m|tba`)
	legacyAtRe       = regexp.MustCompile(`(?i)\bat\b`)
	legacyNeutralRe  = regexp.MustCompile(`(?i)neutral`)
	legacyOpponentRe = regexp.MustCompile(`(?i)\b(vs\.|at)\s+([^\n\r]+?)(?:\s{2,}|$)`)
	legacyTVRe       = regexp.MustCompile(`(?i)\b(fox|fs1|fs2|btn|abc|espn2|espnu|espn|nbc|cbs|peacock)\b`)
)

// parseLegacyRows is the fallback for the older Sidearm markup, which has no
// schedule table. It works from per-game row elements, preferring dedicated
// sub-elements and data attributes but falling back to regex scans over the
// row's flattened text.
func (e *Extractor) parseLegacyRows(doc *goquery.Document, aliases schedule.Aliases) []*schedule.Game {
	var rows *goquery.Selection
	for _, sel := range legacyRowSelectors {
		if rows = doc.Find(sel); rows.Length() > 0 {
			break
		}
	}
	if rows == nil || rows.Length() == 0 {
		return nil
	}

	var games []*schedule.Game
	rows.Each(func(_ int, row *goquery.Selection) {
		if g := e.parseLegacyRow(row, aliases); g != nil {
			games = append(games, g)
		}
	})
	return games
}

func (e *Extractor) parseLegacyRow(row *goquery.Selection, aliases schedule.Aliases) *schedule.Game {
	text := cleanText(row.Text())

	dateText := legacyField(row, "data-date", ".sidearm-schedule-game-opponent-date")
	if dateText == "" {
		dateText = legacyDateRe.FindString(text)
	}

	timeText := legacyField(row, "data-time", ".sidearm-schedule-game-opponent-time")
	if timeText == "" {
		timeText = legacyTimeRe.FindString(text)
	}

	// The opponent-text variant prefixes the marker ("at Colorado State");
	// parseMatchup strips it and leaves plain names alone.
	_, opponent := parseMatchup(row.Find(".sidearm-schedule-game-opponent-name, .opponent, .team, .sidearm-schedule-game-opponent-text").First().Text())
	if opponent == "" {
		if m := legacyOpponentRe.FindStringSubmatch(text); m != nil {
			opponent = cleanText(m[2])
		}
	}
	if opponent == "" {
		return nil
	}

	city, venue := splitLocation(row.Find(".sidearm-schedule-game-location, .location").First().Text())

	// The row text has no structured marker; away-ness is inferred from a
	// bare "at" anywhere in the row, neutral from an explicit label.
	site := schedule.SiteHome
	if legacyAtRe.MatchString(text) {
		site = schedule.SiteAway
	}
	if legacyNeutralRe.MatchString(text) {
		site = schedule.SiteNeutral
	}
	marker := schedule.MarkerVs
	if site == schedule.SiteAway {
		marker = schedule.MarkerAt
	}

	tv := schedule.NormalizeTV(row.Find(".sidearm-schedule-game-video, .tv, .network").First().Text())
	if tv == "" {
		tv = schedule.NormalizeTV(legacyTVRe.FindString(text))
	}

	g := &schedule.Game{
		DateStr:       dateText,
		Site:          site,
		VA:            marker,
		OpponentName:  opponent,
		OpponentSlug:  schedule.Slugify(opponent),
		LocationCity:  city,
		LocationVenue: venue,
		StadiumSlug:   schedule.VenueSlug(venue, city, aliases),
		TVNetwork:     tv,
		Status:        schedule.StatusScheduled,
	}

	dt := schedule.NormalizeDateTime(dateText, timeText, e.now())
	g.SetKickoff(dt.Kickoff)
	g.Weekday = dt.Weekday
	g.TimeLocal = dt.TimeLocal
	g.TBA = dt.TBA
	return g
}

// legacyField prefers a data attribute anywhere in the row, then the text of
// a dedicated sub-element.
func legacyField(row *goquery.Selection, attr, selector string) string {
	if v := cleanText(row.Find("[" + attr + "]").First().AttrOr(attr, "")); v != "" {
		return v
	}
	return cleanText(row.Find(selector).First().Text())
}
