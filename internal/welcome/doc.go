// Package welcome persists user onboarding submissions.
//
// This is the one write path in the system: everything else is
// re-derived from scraped pages, but the team a user picked during
// onboarding is kept in Postgres.
package welcome
