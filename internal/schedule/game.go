package schedule

import "time"

// Site values for a game.
const (
	SiteHome    = "home"
	SiteAway    = "away"
	SiteNeutral = "neutral"
)

// Matchup markers shown beside the opponent name.
const (
	MarkerVs = "vs."
	MarkerAt = "at"
)

// StatusScheduled is the only status this scraper emits; results and
// cancellations are not tracked.
const StatusScheduled = "scheduled"

// ISOLayout is the timestamp layout written to schedule.json.
const ISOLayout = "2006-01-02T15:04:05"

// Game is one normalized schedule entry.
type Game struct {
	DateISO       string `json:"date_iso,omitempty"`
	Weekday       string `json:"weekday,omitempty"`
	DateStr       string `json:"date_str,omitempty"`
	TimeLocal     string `json:"time_local,omitempty"`
	TBA           bool   `json:"tba"`
	Site          string `json:"site"`
	VA            string `json:"va"`
	OpponentName  string `json:"opponent_name"`
	OpponentSlug  string `json:"opponent_slug,omitempty"`
	OpponentLogo  string `json:"opponent_logo_url,omitempty"`
	LocationCity  string `json:"location_city,omitempty"`
	LocationVenue string `json:"location_venue,omitempty"`
	StadiumSlug   string `json:"stadium_slug,omitempty"`
	TVNetwork     string `json:"tv_network,omitempty"`
	Status        string `json:"status"`

	// Kickoff mirrors DateISO as a parsed time for sorting and calendar
	// export. Zero when the date could not be resolved.
	Kickoff time.Time `json:"-"`
}

// SetKickoff stores the canonical timestamp and its serialized form together.
func (g *Game) SetKickoff(t time.Time) {
	g.Kickoff = t
	if t.IsZero() {
		g.DateISO = ""
		return
	}
	g.DateISO = t.Format(ISOLayout)
}
