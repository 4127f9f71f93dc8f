package enrich

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ISODate is the canonical output format for posted dates.
const ISODate = "2006-01-02"

// relativeDatePattern matches phrases like "3 days ago" or "2 weeks ago".
var relativeDatePattern = regexp.MustCompile(`(\d+)\s+(day|days|week|weeks|month|months)\s+ago`)

// absoluteDateLayouts are tried in order; the first layout that parses wins.
// DD/MM/YYYY is deliberately tried before MM/DD/YYYY, so ambiguous dates
// resolve to the day-first reading.
var absoluteDateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
}

const (
	daysPerWeek = 7
	// Months are approximated as 30 days for relative dates.
	daysPerMonth = 30
)

// titleCaser restores month-name capitalization after the input is
// lowercased, since time.Parse matches month names case-sensitively.
var titleCaser = cases.Title(language.English)

// DateNormalizer converts absolute or relative date text into canonical
// YYYY-MM-DD form. The clock is injectable so relative dates are testable
// against a fixed reference day.
type DateNormalizer struct {
	now func() time.Time
}

// NewDateNormalizer creates a normalizer using the wall clock.
func NewDateNormalizer() *DateNormalizer {
	return &DateNormalizer{now: time.Now}
}

// NewDateNormalizerWithClock creates a normalizer with a fixed clock.
func NewDateNormalizerWithClock(now func() time.Time) *DateNormalizer {
	return &DateNormalizer{now: now}
}

// Normalize returns the canonical date for text, or "" when no rule matches.
// Relative phrases are checked first, then the absolute layout list.
func (d *DateNormalizer) Normalize(text string) string {
	if text == "" {
		return ""
	}

	lowered := strings.ToLower(strings.TrimSpace(text))

	if m := relativeDatePattern.FindStringSubmatch(lowered); m != nil {
		return d.resolveRelative(m)
	}

	titled := titleCaser.String(lowered)
	for _, layout := range absoluteDateLayouts {
		if parsed, err := time.Parse(layout, titled); err == nil {
			return parsed.Format(ISODate)
		}
	}

	return ""
}

// resolveRelative computes today minus the matched offset.
func (d *DateNormalizer) resolveRelative(m []string) string {
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return ""
	}

	days := n
	switch m[2] {
	case "week", "weeks":
		days = n * daysPerWeek
	case "month", "months":
		days = n * daysPerMonth
	}

	return d.now().AddDate(0, 0, -days).Format(ISODate)
}
