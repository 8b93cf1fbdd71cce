// Package notifier announces schedule changes detected between scraper runs.
//
// The notifier package supports posting change notifications to Twitter,
// handling OAuth authentication, rate limiting, and message formatting. A
// dry-run implementation prints what would be posted instead.
package notifier
