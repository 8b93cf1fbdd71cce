// Package extract parses the huskers.com football schedule page into
// normalized game records.
//
// The page has carried two layouts across site revisions: a primary table
// listing (date, matchup, location, time/result columns) and the older
// Sidearm row markup. Extraction runs an ordered list of strategies and the
// first one that yields rows wins. Independently of the base rows, the
// per-game event cards are mined for enrichment data (opponent logos,
// broadcaster, refined location) and merged onto the base records by fuzzy
// opponent-name match.
//
// Per-row problems never abort a parse; a malformed row degrades to a
// partial record or is dropped. An empty result on a healthy fetch is the
// signal that the page layout changed again.
package extract
