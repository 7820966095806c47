package htmlutil

import "strings"

// Text trims raw text scraped from a page and returns nil when nothing
// remains. Extractors use it wherever a label may be absent rather than
// merely blank.
func Text(raw string) *string {
	t := strings.TrimSpace(raw)
	if t == "" {
		return nil
	}
	return &t
}

// ResolveURL resolves a relative image or link path against the source
// site's origin. An empty ref yields nil, and refs that already carry an
// http(s) scheme pass through unchanged. Everything else is joined to
// base with exactly one "/" separator; no further validation is done.
func ResolveURL(base, ref string) *string {
	if ref == "" {
		return nil
	}
	lower := strings.ToLower(ref)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return &ref
	}
	resolved := strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(ref, "/")
	return &resolved
}
