package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/hyst16/HuskerFB-Schedule/internal/schedule"
)

// GenerateCalendar generates an iCalendar (.ics) document covering the whole
// schedule, one VEVENT per game.
func GenerateCalendar(games []*schedule.Game) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//Husker Schedule//huskerfb-schedule//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")

	now := time.Now().UTC()
	for _, g := range games {
		writeEvent(&ics, g, now)
	}

	ics.WriteString("END:VCALENDAR\r\n")
	return ics.String()
}

// writeEvent emits one VEVENT. Games with a known kickoff get a 3.5 hour
// window; TBA games become all-day entries on the game date. Games without
// any resolved date are skipped, since a calendar entry needs one.
func writeEvent(ics *strings.Builder, g *schedule.Game, stamp time.Time) {
	if g.Kickoff.IsZero() {
		return
	}

	ics.WriteString("BEGIN:VEVENT\r\n")
	fmt.Fprintf(ics, "UID:%s-%s@huskers.com\r\n", g.Kickoff.Format("20060102"), g.OpponentSlug)
	fmt.Fprintf(ics, "DTSTAMP:%s\r\n", formatICSTime(stamp))

	if g.TBA {
		day := g.Kickoff.Format("20060102")
		fmt.Fprintf(ics, "DTSTART;VALUE=DATE:%s\r\n", day)
	} else {
		fmt.Fprintf(ics, "DTSTART:%s\r\n", formatICSTime(g.Kickoff))
		fmt.Fprintf(ics, "DTEND:%s\r\n", formatICSTime(g.Kickoff.Add(3*time.Hour+30*time.Minute)))
	}

	summary := fmt.Sprintf("Nebraska %s %s", g.VA, g.OpponentName)
	fmt.Fprintf(ics, "SUMMARY:%s\r\n", escapeICS(summary))

	description := summary
	if g.TimeLocal != "" {
		description += fmt.Sprintf("\nKickoff: %s", g.TimeLocal)
	}
	if g.TVNetwork != "" {
		description += fmt.Sprintf("\nTV: %s", strings.ToUpper(g.TVNetwork))
	}
	fmt.Fprintf(ics, "DESCRIPTION:%s\r\n", escapeICS(description))

	if g.LocationVenue != "" || g.LocationCity != "" {
		location := g.LocationVenue
		if g.LocationCity != "" {
			if location != "" {
				location += ", "
			}
			location += g.LocationCity
		}
		fmt.Fprintf(ics, "LOCATION:%s\r\n", escapeICS(location))
	}

	ics.WriteString("URL:https://huskers.com/sports/football/schedule\r\n")
	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("SEQUENCE:0\r\n")
	ics.WriteString("TRANSP:OPAQUE\r\n")
	ics.WriteString("END:VEVENT\r\n")
}

// formatICSTime formats a time.Time as an iCalendar datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes special characters for iCalendar format
func escapeICS(s string) string {
	// Replace special characters according to RFC 5545
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
