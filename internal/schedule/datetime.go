package schedule

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateTime is the normalized form of a raw date/time text pair.
type DateTime struct {
	Kickoff   time.Time // zero when no date could be resolved
	Weekday   string    // uppercase weekday name, empty without a date
	TimeLocal string    // display time, or "TBA"
	TBA       bool
}

var monthNumbers = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

var (
	monthDayRe = regexp.MustCompile(`(?i)(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+(\d{1,2})`)
	clockRe    = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*([ap])\.?\s*m\.?`)
	spaceRe    = regexp.MustCompile(`\s+`)
)

// NormalizeDateTime resolves raw schedule text into a canonical kickoff
// timestamp plus display fields. now anchors year inference: schedule pages
// are published annually, so a month more than one calendar month behind the
// current one is assumed to belong to next year. Unresolvable pieces degrade
// gracefully; the function never fails.
//
// A date without a usable time still gets a noon kickoff so it sorts
// sensibly among timed games on the same day.
func NormalizeDateTime(dateText, timeText string, now time.Time) DateTime {
	dt := DateTime{}

	timeClean := spaceRe.ReplaceAllString(strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(timeText)), ".", ""), " ")
	hour, minute, haveClock := parseClock(timeText)
	if timeClean == "" || strings.Contains(strings.ToLower(timeText), "tba") || !haveClock {
		dt.TBA = true
		dt.TimeLocal = "TBA"
	} else {
		dt.TimeLocal = timeClean
	}

	m := monthDayRe.FindStringSubmatch(dateText)
	if m == nil {
		return dt
	}
	month := monthNumbers[strings.ToLower(m[1])]
	day, err := strconv.Atoi(m[2])
	if err != nil || day < 1 || day > 31 {
		return dt
	}

	year := now.Year()
	if int(month) < int(now.Month())-1 {
		year++
	}

	if dt.TBA {
		hour, minute = 12, 0
	}
	kickoff := time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
	dt.Kickoff = kickoff
	dt.Weekday = strings.ToUpper(kickoff.Weekday().String())
	return dt
}

// parseClock extracts a 12-hour clock time with meridiem and converts it to
// 24-hour form. Trailing text such as a timezone label is ignored, as is
// anything before the clock (the time column can carry post-game results).
func parseClock(text string) (hour, minute int, ok bool) {
	m := clockRe.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, false
	}
	h, err := strconv.Atoi(m[1])
	if err != nil || h < 1 || h > 12 {
		return 0, 0, false
	}
	min, err := strconv.Atoi(m[2])
	if err != nil || min > 59 {
		return 0, 0, false
	}
	if h == 12 {
		h = 0
	}
	if strings.EqualFold(m[3], "p") {
		h += 12
	}
	return h, min, true
}
