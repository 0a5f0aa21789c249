// Package slug derives URL-safe identifiers from post titles.
package slug

import (
	"regexp"
	"strings"
)

var (
	invalidChars  = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespaceRun = regexp.MustCompile(`\s+`)
	hyphenRun     = regexp.MustCompile(`-+`)
)

// Generate derives a slug from a title: lowercase, strip everything but
// letters, digits, spaces and hyphens, collapse whitespace to single hyphens,
// collapse hyphen runs, and trim hyphens at both ends. It is a pure function;
// collision handling is the store's job.
func Generate(title string) string {
	s := strings.ToLower(title)
	s = invalidChars.ReplaceAllString(s, "")
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = hyphenRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
