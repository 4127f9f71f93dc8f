// Package enrich implements the per-field normalization and enrichment
// operations of the pipeline: text cleaning, skill extraction, location and
// salary parsing, date normalization, and schema unification.
package enrich

import (
	"regexp"
	"strings"
)

var (
	htmlTagPattern    = regexp.MustCompile(`<[^>]+>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// CleanText removes HTML tags, collapses whitespace runs (including newlines
// and tabs) to single spaces, and trims. It is idempotent:
// CleanText(CleanText(s)) == CleanText(s). Empty input yields "".
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	text = htmlTagPattern.ReplaceAllString(text, " ")
	text = whitespacePattern.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}
