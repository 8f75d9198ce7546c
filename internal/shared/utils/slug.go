package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9-]+`)
	slugDashRuns     = regexp.MustCompile(`-+`)
)

// GenerateSlug turns a display name into a URL-friendly slug:
// "20% Off Everything!" -> "20-off-everything".
func GenerateSlug(input string) string {
	lower := strings.ToLower(strings.TrimSpace(input))
	hyphenated := strings.ReplaceAll(lower, " ", "-")
	cleaned := slugInvalidChars.ReplaceAllString(hyphenated, "")
	normalized := slugDashRuns.ReplaceAllString(cleaned, "-")
	return strings.Trim(normalized, "-")
}
