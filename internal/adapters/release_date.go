package adapters

import (
	"strings"
	"time"
)

var releaseDateLayouts = []string{
	time.DateOnly,
	time.RFC3339Nano,
	time.RFC3339,
	time.DateTime,
}

// parseReleaseDate accepts the date forms found in distro-info and release
// metadata files. Blank or unparseable values yield the zero time, which
// callers treat as "unknown".
func parseReleaseDate(value string) time.Time {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}
	}
	for _, layout := range releaseDateLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed.UTC()
		}
	}
	return time.Time{}
}
