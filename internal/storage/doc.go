// Package storage persists scraper output as JSON files and mirrors them
// into the docs/ directory the GitHub Pages site is served from.
//
// Writes are idempotent: a file is rewritten only when its canonical JSON
// form actually changed, so re-running the scraper on an unchanged schedule
// leaves file modification times (and the git working tree) untouched.
package storage
