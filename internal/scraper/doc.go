// Package scraper fetches pages from the Korea Handball Federation site
// and runs them through the extractors.
//
// It owns the HTTP boundary: one GET per extractor invocation with a
// browser-like identity, a 15 second timeout, and no retries. The season
// calendar build is the only multi-fetch operation, crawling the twelve
// months of a season one after another and aborting on the first
// failure.
package scraper
