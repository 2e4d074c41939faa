// Package domainname reduces user-supplied domain strings to the canonical
// host-only form used as the comparison key everywhere in the service.
package domainname

import "strings"

// Normalize lowercases the input and strips scheme, a single leading "www.",
// path, trailing slash and port. It is idempotent and never fails; degenerate
// input may normalize to the empty string.
func Normalize(raw string) string {
	d := strings.ToLower(strings.TrimSpace(raw))

	d = strings.TrimPrefix(d, "http://")
	d = strings.TrimPrefix(d, "https://")
	d = strings.TrimPrefix(d, "www.")
	d = strings.TrimSuffix(d, "/")

	if i := strings.Index(d, "/"); i >= 0 {
		d = d[:i]
	}
	if i := strings.Index(d, ":"); i >= 0 {
		d = d[:i]
	}

	return d
}
