// Package league defines the query record shared by every fetch against
// the source site and the URL builders for its roster, schedule, and
// ranking pages.
package league
