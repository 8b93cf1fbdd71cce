// Package schedule provides the normalized game record model for the Husker
// football schedule scraper, along with the pure helpers every extractor
// depends on: slug generation, date/time normalization, TV network mapping,
// venue alias lookup, and final sorting/derived-set computation.
//
// Stadium slugs are deterministic functions of venue and city text (plus an
// optional alias override), so repeated runs on identical markup always
// produce identical output files.
package schedule
