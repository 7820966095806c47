// Package cache stores whole scraped responses in Redis as JSON.
//
// Only roster responses are cached, keyed by gender with a fixed TTL.
// The extractors stay cache-agnostic; the serving layer consults and
// populates the cache around them.
package cache
