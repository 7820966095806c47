// Package cli defines the handball-api command tree: the HTTP server
// plus one-shot fetch commands that print scraped data as JSON or write
// a season calendar.
package cli
