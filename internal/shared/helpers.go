// Package shared provides normalization helpers used across the
// kernel-lifecycle packages.
package shared

import "strings"

// NormalizeCodename lowercases and trims a release codename so "Noble",
// " noble" and "noble" address the same release.
func NormalizeCodename(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// NormalizeSet builds a lookup set of lowercased, trimmed values, skipping
// blanks.
func NormalizeSet(values []string) map[string]struct{} {
	set := map[string]struct{}{}
	for _, value := range values {
		key := strings.ToLower(strings.TrimSpace(value))
		if key == "" {
			continue
		}
		set[key] = struct{}{}
	}
	return set
}
