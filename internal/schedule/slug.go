package schedule

import (
	"regexp"
	"strings"
)

var (
	slugRe        = regexp.MustCompile(`[^a-z0-9]+`)
	stateSuffixRe = regexp.MustCompile(`,.*$`)
)

// Slugify lowercases text and collapses every run of characters outside
// [a-z0-9] into a single hyphen, trimming hyphens from both ends. It never
// fails; empty input yields an empty slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// VenueSlug computes the stadium identifier used for asset lookup.
//
// An alias entry for the exact raw venue label short-circuits the
// computation entirely. Otherwise the slug is built from the venue name
// (falling back to the city, then a generic "stadium"). The city, with any
// ", State" suffix stripped, is appended as a disambiguating tag unless the
// base slug already contains it (so "Memorial Stadium (Lincoln)" does not
// become memorial-stadium-lincoln-lincoln).
func VenueSlug(venue, city string, aliases Aliases) string {
	if slug, ok := aliases[venue]; ok {
		return slug
	}

	base := venue
	if base == "" {
		base = city
	}
	if base == "" {
		base = "stadium"
	}
	baseSlug := Slugify(base)

	cityTag := Slugify(stateSuffixRe.ReplaceAllString(city, ""))
	if cityTag != "" && !strings.Contains(baseSlug, cityTag) {
		return baseSlug + "-" + cityTag
	}
	return baseSlug
}
