package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hyst16/HuskerFB-Schedule/internal/assets"
	"github.com/hyst16/HuskerFB-Schedule/internal/calendar"
	"github.com/hyst16/HuskerFB-Schedule/internal/extract"
	"github.com/hyst16/HuskerFB-Schedule/internal/fetch"
	"github.com/hyst16/HuskerFB-Schedule/internal/logger"
	"github.com/hyst16/HuskerFB-Schedule/internal/notifier"
	"github.com/hyst16/HuskerFB-Schedule/internal/schedule"
	"github.com/hyst16/HuskerFB-Schedule/internal/storage"
)

const (
	ExitSuccess = 0
	ExitError   = 1
	ExitChanged = 2
)

var (
	flagURL        string
	flagDataDir    string
	flagDocsDir    string
	flagAssetsDir  string
	flagLogosDir   string
	flagAliases    string
	flagFormat     string
	flagLogLevel   string
	flagRender     bool
	flagFetchLogos bool
	flagCalendar   bool
	flagNotify     bool
	flagDryRun     bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "husker-schedule",
		Short: "Scrape the Nebraska football schedule into JSON for the Pages site",
		Long: `Scrapes the huskers.com football schedule page, normalizes the games,
and writes schedule.json plus the derived stadium image lists. Writes are
idempotent: unchanged output leaves the files untouched. Exit code 2 means
the schedule changed since the previous run.`,
		RunE: runScrape,
	}

	cmd.Flags().StringVar(&flagURL, "url", fetch.ScheduleURL, "Schedule page URL")
	cmd.Flags().StringVar(&flagDataDir, "data-dir", "data", "Directory for JSON output")
	cmd.Flags().StringVar(&flagDocsDir, "docs-dir", "docs", "Directory the Pages site serves from")
	cmd.Flags().StringVar(&flagAssetsDir, "assets-dir", "assets/stadiums", "Directory of stadium images (<slug>.jpg)")
	cmd.Flags().StringVar(&flagLogosDir, "logos-dir", "docs/assets/opponents", "Directory for downloaded opponent logos")
	cmd.Flags().StringVar(&flagAliases, "aliases", "", "Venue alias CSV (default <assets-dir>/aliases.csv)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	cmd.Flags().BoolVar(&flagRender, "render", false, "Render the page with headless Chromium before parsing")
	cmd.Flags().BoolVar(&flagFetchLogos, "fetch-logos", false, "Download opponent logos found during extraction")
	cmd.Flags().BoolVar(&flagCalendar, "calendar", false, "Write schedule.ics into the docs directory")
	cmd.Flags().BoolVar(&flagNotify, "notify", false, "Tweet newly added or changed games")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print notifications instead of posting them")

	return cmd
}

// runScrape is the main command logic
func runScrape(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	// Twitter credentials may live in a local .env file.
	_ = godotenv.Load()

	log := logger.New(flagLogLevel)
	defer log.Sync() //nolint:errcheck

	ctx := context.Background()

	aliasPath := flagAliases
	if aliasPath == "" {
		aliasPath = filepath.Join(flagAssetsDir, "aliases.csv")
	}
	aliases, err := schedule.LoadAliases(aliasPath)
	if err != nil {
		return fmt.Errorf("loading aliases: %w", err)
	}
	log.Debugw("loaded venue aliases", "count", len(aliases), "path", aliasPath)

	html, err := fetchPage(ctx, log)
	if err != nil {
		return fmt.Errorf("fetching schedule: %w", err)
	}

	games, err := extract.New().Parse(html, aliases)
	if err != nil {
		return fmt.Errorf("extracting schedule: %w", err)
	}
	if len(games) == 0 {
		// Either the schedule is legitimately empty or the page layout
		// changed; extraction cannot tell the two apart.
		log.Warnw("no games extracted", "url", flagURL)
	}

	stadiums, err := assets.NewDir(flagAssetsDir)
	if err != nil {
		return err
	}

	ordered, needed, missing := schedule.Finalize(games, stadiums.HasStadium)
	log.Infow("extracted schedule", "games", len(ordered), "stadiums_needed", len(needed), "stadiums_missing", len(missing))

	store, err := storage.New(flagDataDir, flagDocsDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	previous, err := store.LoadSchedule()
	if err != nil {
		return fmt.Errorf("loading previous schedule: %w", err)
	}
	diff := schedule.Diff(previous, ordered)

	if _, err := store.WriteJSON(storage.ScheduleFile, ordered); err != nil {
		return err
	}
	if _, err := store.WriteJSON(storage.NeededFile, needed); err != nil {
		return err
	}
	if _, err := store.WriteJSON(storage.MissingFile, missing); err != nil {
		return err
	}
	if err := store.Publish(storage.ScheduleFile, storage.NeededFile, storage.MissingFile); err != nil {
		return err
	}

	if flagCalendar {
		if _, err := store.WriteDocs("schedule.ics", []byte(calendar.GenerateCalendar(ordered))); err != nil {
			return err
		}
	}

	if flagFetchLogos {
		downloadLogos(ctx, log, ordered)
	}

	if flagNotify && diff.Changed() {
		if err := notify(log, diff); err != nil {
			return fmt.Errorf("notifying: %w", err)
		}
	}

	result := &OutputResult{
		ScrapedAt:       time.Now().UTC(),
		GameCount:       len(ordered),
		StadiumsNeeded:  needed,
		StadiumsMissing: missing,
		Added:           diff.Added,
		Changes:         diff.Changes,
	}
	if err := WriteOutput(os.Stdout, result, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if diff.Changed() {
		os.Exit(ExitChanged)
	}
	os.Exit(ExitSuccess)
	return nil
}

// fetchPage retrieves the schedule markup, through headless Chromium when
// --render is set (the logo images are lazy-loaded and absent from the plain
// HTTP response).
func fetchPage(ctx context.Context, log *zap.SugaredLogger) (string, error) {
	if flagRender {
		r := fetch.NewRenderer()
		defer r.Close()
		log.Debugw("rendering page", "url", flagURL)
		return r.Render(ctx, flagURL)
	}
	log.Debugw("fetching page", "url", flagURL)
	return fetch.New().Get(ctx, flagURL)
}

// downloadLogos fetches each opponent logo into the logos directory.
// Failures are logged and skipped; a missing logo is not fatal.
func downloadLogos(ctx context.Context, log *zap.SugaredLogger, games []*schedule.Game) {
	dir, err := assets.NewDir(flagLogosDir)
	if err != nil {
		log.Warnw("creating logos directory", "error", err)
		return
	}
	dl := assets.NewDownloader(dir)
	for _, g := range games {
		if g.OpponentLogo == "" || g.OpponentSlug == "" {
			continue
		}
		if _, err := dl.Download(ctx, g.OpponentLogo, g.OpponentSlug); err != nil {
			log.Warnw("logo download failed", "opponent", g.OpponentSlug, "url", g.OpponentLogo, "error", err)
		}
	}
}

func notify(log *zap.SugaredLogger, diff *schedule.DiffResult) error {
	var n notifier.Notifier
	if flagDryRun {
		n = notifier.NewDryRunNotifier()
	} else {
		tw, err := notifier.NewTwitterNotifier()
		if err != nil {
			return err
		}
		n = tw
	}
	log.Infow("announcing schedule changes", "added", len(diff.Added), "changes", len(diff.Changes))
	return n.Notify(diff)
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
