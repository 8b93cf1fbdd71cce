// Command logo-probe is a diagnostic tool for the opponent-logo heuristics.
// It fetches the schedule page (optionally through headless Chromium, since
// the logo markup is lazy-loaded), extracts the per-game event cards, and
// reports what logo URL each card resolved to. With --download it also
// fetches the logos into a local directory for inspection.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/hyst16/HuskerFB-Schedule/internal/assets"
	"github.com/hyst16/HuskerFB-Schedule/internal/extract"
	"github.com/hyst16/HuskerFB-Schedule/internal/fetch"
	"github.com/hyst16/HuskerFB-Schedule/internal/schedule"
)

var (
	pageURL  = flag.String("url", fetch.ScheduleURL, "Schedule page URL")
	render   = flag.Bool("render", false, "Render with headless Chromium first")
	snapshot = flag.String("snapshot", "", "Also save the raw HTML to this path")
	download = flag.Bool("download", false, "Download found logos")
	outDir   = flag.String("out-dir", "docs/assets/opponents/_fetched", "Directory for downloaded logos")
)

type probeRow struct {
	OpponentName string `json:"opponent_name"`
	OpponentSlug string `json:"opponent_slug"`
	LogoURL      string `json:"logo_url,omitempty"`
	Broadcaster  string `json:"broadcaster,omitempty"`
}

func main() {
	flag.Parse()
	ctx := context.Background()

	html, err := fetchPage(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching page: %v\n", err)
		os.Exit(1)
	}

	if *snapshot != "" {
		if err := os.WriteFile(*snapshot, []byte(html), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Snapshot saved: %s\n", *snapshot)
	}

	fragments, err := extract.New().Fragments(html)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing page: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Cards found: %d\n", len(fragments))

	rows := make([]probeRow, 0, len(fragments))
	for _, f := range fragments {
		rows = append(rows, probeRow{
			OpponentName: f.OpponentName,
			OpponentSlug: schedule.Slugify(f.OpponentName),
			LogoURL:      f.LogoURL,
			Broadcaster:  f.Broadcaster,
		})
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(rows); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
		os.Exit(1)
	}

	if *download {
		downloadLogos(ctx, rows)
	}
}

func fetchPage(ctx context.Context) (string, error) {
	if *render {
		r := fetch.NewRenderer()
		defer r.Close()
		return r.Render(ctx, *pageURL)
	}
	return fetch.New().Get(ctx, *pageURL)
}

func downloadLogos(ctx context.Context, rows []probeRow) {
	dir, err := assets.NewDir(*outDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}
	dl := assets.NewDownloader(dir)

	saved := 0
	for _, row := range rows {
		if row.LogoURL == "" || row.OpponentSlug == "" {
			fmt.Fprintf(os.Stderr, "SKIP: %s (no logo URL)\n", row.OpponentName)
			continue
		}
		dest, err := dl.Download(ctx, row.LogoURL, row.OpponentSlug)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL: %s: %v\n", row.OpponentName, err)
			continue
		}
		saved++
		fmt.Fprintf(os.Stderr, "OK  : %s -> %s\n", row.OpponentName, dest)
	}
	fmt.Fprintf(os.Stderr, "Logos downloaded: %d\n", saved)
}
