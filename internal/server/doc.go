// Package server exposes the scraped league data over HTTP.
//
// Routes mirror what the browser client consumes: roster, schedule, and
// ranking envelopes as JSON, a per-team season calendar as text/calendar,
// and a write endpoint for onboarding submissions. The roster endpoint is
// the only cached one; everything else crawls the source live.
package server
