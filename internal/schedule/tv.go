package schedule

import (
	"regexp"
	"strings"
)

// tvNetworks maps cleaned broadcaster labels to the short codes the site
// uses for TV logos.
var tvNetworks = map[string]string{
	"big ten network": "btn",
	"btn":             "btn",
	"fox":             "fox",
	"fs1":             "fs1",
	"fs2":             "fs2",
	"cbs":             "cbs",
	"nbc":             "nbc",
	"peacock":         "peacock",
	"abc":             "abc",
	"espn":            "espn",
	"espn2":           "espn2",
	"espnu":           "espnu",
}

var tvCleanRe = regexp.MustCompile(`[^a-z0-9 ]+`)

// NormalizeTV maps raw broadcaster text (typically image alt text) to a
// known network code. Unrecognized networks yield an empty string rather
// than a guess.
func NormalizeTV(s string) string {
	key := tvCleanRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "")
	return tvNetworks[key]
}
