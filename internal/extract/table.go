package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/hyst16/HuskerFB-Schedule/internal/schedule"
)

var (
	markerRe    = regexp.MustCompile(`(?is)^(vs|at)\b[.\s]*(.*)$`)
	tableTimeRe = regexp.MustCompile(`(?i:\d{1,2}:\d{2}\s*[ap]\.?\s*m\.?)(?:\s+[A-Z]{2,4})?`)
	tbaRe       = regexp.MustCompile(`(?i)\btba\b`)
)

// parseTable extracts base records from the primary schedule table: the one
// whose header row carries both a date-like and a location-like column. No
// such table means this strategy yields nothing and the legacy row parser
// gets its turn.
func (e *Extractor) parseTable(doc *goquery.Document, aliases schedule.Aliases) []*schedule.Game {
	table := findScheduleTable(doc)
	if table == nil {
		return nil
	}

	var games []*schedule.Game
	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return // the header row findScheduleTable matched on
		}
		if row.Find("th").Length() > 0 && row.Find("td").Length() == 0 {
			return // section header
		}
		cells := row.Find("th, td")
		if cells.Length() < 4 {
			return // spacer/footer rows
		}
		if g := e.parseTableRow(cells, aliases); g != nil {
			games = append(games, g)
		}
	})
	return games
}

// findScheduleTable returns the first table whose header labels mention a
// date and a location, or nil.
func findScheduleTable(doc *goquery.Document) *goquery.Selection {
	var found *goquery.Selection
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		header := table.Find("tr").First()
		hasDate, hasLocation := false, false
		header.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			label := strings.ToLower(cleanText(cell.Text()))
			if strings.Contains(label, "date") {
				hasDate = true
			}
			if strings.Contains(label, "location") {
				hasLocation = true
			}
		})
		if hasDate && hasLocation {
			found = table
			return false
		}
		return true
	})
	return found
}

// parseTableRow maps the four known columns (date, matchup, location,
// time-or-result) onto a record. Rows without an opponent come back nil.
func (e *Extractor) parseTableRow(cells *goquery.Selection, aliases schedule.Aliases) *schedule.Game {
	dateText := cleanText(cells.Eq(0).Text())
	marker, opponent := parseMatchup(cells.Eq(1).Text())
	city, venue := splitLocation(cells.Eq(2).Text())
	timeText := extractTime(cells.Eq(3).Text())

	if opponent == "" {
		return nil
	}

	g := &schedule.Game{
		DateStr:       dateText,
		Site:          e.site(marker, city),
		VA:            marker,
		OpponentName:  opponent,
		OpponentSlug:  schedule.Slugify(opponent),
		LocationCity:  city,
		LocationVenue: venue,
		StadiumSlug:   schedule.VenueSlug(venue, city, aliases),
		Status:        schedule.StatusScheduled,
	}

	dt := schedule.NormalizeDateTime(dateText, timeText, e.now())
	g.SetKickoff(dt.Kickoff)
	g.Weekday = dt.Weekday
	g.TimeLocal = dt.TimeLocal
	g.TBA = dt.TBA
	return g
}

// parseMatchup splits "vs.\nColorado" style cell text into the relational
// marker and the opponent name. A missing marker defaults to "vs.".
func parseMatchup(text string) (marker, opponent string) {
	text = strings.TrimSpace(text)
	if m := markerRe.FindStringSubmatch(text); m != nil {
		marker = schedule.MarkerVs
		if strings.EqualFold(m[1], "at") {
			marker = schedule.MarkerAt
		}
		return marker, cleanText(m[2])
	}
	return schedule.MarkerVs, cleanText(text)
}

// extractTime pulls the clock-time substring out of the time/result column.
// The column doubles as a result column after kickoff ("W 28-10"), so
// anything that is not a clock time or an explicit TBA is ignored.
func extractTime(text string) string {
	if m := tableTimeRe.FindString(text); m != "" {
		return cleanText(m)
	}
	if tbaRe.MatchString(text) {
		return "TBA"
	}
	return ""
}
