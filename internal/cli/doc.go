// Package cli implements the command-line interface for husker-schedule.
//
// The cli package provides the Cobra-based CLI that fetches the huskers.com
// football schedule page, extracts and normalizes the games, writes the
// JSON outputs (schedule, stadiums needed, stadiums missing) idempotently,
// and optionally downloads opponent logos, exports an iCalendar file, and
// announces schedule changes. It coordinates the fetch, extract, schedule,
// assets, storage, calendar, and notifier packages.
package cli
