// Package htmlutil provides the small text and URL normalization helpers
// shared by every extractor.
//
// Scraped labels come back with surrounding whitespace and image/link
// attributes are usually site-relative, so the helpers here translate
// both into the explicit forms the domain types use: nil for an absent
// value and absolute URLs for anything resolvable.
package htmlutil
