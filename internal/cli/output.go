package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hyst16/HuskerFB-Schedule/internal/schedule"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains data to be output
type OutputResult struct {
	ScrapedAt       time.Time         `json:"scraped_at"`
	GameCount       int               `json:"game_count"`
	StadiumsNeeded  []string          `json:"stadiums_needed"`
	StadiumsMissing []string          `json:"stadiums_missing"`
	Added           []*schedule.Game  `json:"added,omitempty"`
	Changes         []schedule.Change `json:"changes,omitempty"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult) error {
	fmt.Fprintf(w, "Scraped %d games.\n", result.GameCount)

	if len(result.StadiumsMissing) > 0 {
		fmt.Fprintf(w, "Stadium images missing (%d): %s\n",
			len(result.StadiumsMissing), strings.Join(result.StadiumsMissing, ", "))
	} else {
		fmt.Fprintln(w, "No stadium images missing.")
	}

	if len(result.Added) == 0 && len(result.Changes) == 0 {
		fmt.Fprintln(w, "No schedule changes since last run.")
		return nil
	}

	for _, g := range result.Added {
		line := fmt.Sprintf("NEW: %s %s", g.VA, g.OpponentName)
		if g.DateStr != "" {
			line += fmt.Sprintf(" (%s", g.DateStr)
			if g.TimeLocal != "" {
				line += ", " + g.TimeLocal
			}
			line += ")"
		}
		fmt.Fprintln(w, line)
	}

	for _, c := range result.Changes {
		fmt.Fprintf(w, "CHANGED: %s %s: %q -> %q\n", c.OpponentName, c.Field, c.OldValue, c.NewValue)
	}

	fmt.Fprintf(w, "\nTotal: %d added, %d changed\n", len(result.Added), len(result.Changes))
	return nil
}
