package enrich

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonesrussell/job-normalizer/internal/domain"
)

// currencyMarkers maps symbols and literal codes to ISO currency codes.
// Order matters: detection scans the list top to bottom and the first marker
// present in the text wins.
var currencyMarkers = []struct {
	marker string
	code   string
}{
	{"$", "USD"},
	{"£", "GBP"},
	{"€", "EUR"},
	{"¥", "JPY"},
	{"usd", "USD"},
	{"gbp", "GBP"},
	{"eur", "EUR"},
	{"jpy", "JPY"},
}

// periodPatterns are tested in order; the first match wins.
var periodPatterns = []struct {
	period  string
	pattern *regexp.Regexp
}{
	{"year", regexp.MustCompile(`\b(year|yearly|annual|per year|/year|p\.a\.)\b`)},
	{"month", regexp.MustCompile(`\b(month|monthly|per month|/month)\b`)},
	{"week", regexp.MustCompile(`\b(week|weekly|per week|/week)\b`)},
	{"hour", regexp.MustCompile(`\b(hour|hourly|per hour|/hour)\b`)},
	{"day", regexp.MustCompile(`\b(day|daily|per day|/day)\b`)},
}

var (
	// "$50,000 - $70,000", "50k-70k", "90k to 120k". The second number may
	// repeat the currency symbol, as in "$90k - $120k".
	salaryRangePattern = regexp.MustCompile(`(\d[\d,.]+)(?:k)?(?:\s*-\s*|\s*to\s*)[$£€¥]?\s*(\d[\d,.]+)(?:k)?`)

	salarySinglePattern = regexp.MustCompile(`(\d[\d,.]+)(?:k)?`)
)

const thousandMultiplier = 1000

// ParseSalary extracts min, max, currency, and period from free-text salary.
// An empty or unparseable string yields an all-null result, never an error.
// When only a single number is present, min and max both carry it; a range
// parsed in inverted order is swapped so min <= max always holds.
func ParseSalary(text string) domain.Salary {
	if text == "" {
		return domain.Salary{}
	}

	lowered := strings.ToLower(text)
	result := domain.Salary{}

	for _, c := range currencyMarkers {
		if strings.Contains(lowered, c.marker) {
			result.Currency = c.code
			break
		}
	}

	for _, p := range periodPatterns {
		if p.pattern.MatchString(lowered) {
			result.Period = p.period
			break
		}
	}

	// "k" anywhere in the text scales every parsed number by 1000.
	multiplier := 1.0
	if strings.Contains(lowered, "k") {
		multiplier = thousandMultiplier
	}

	if m := salaryRangePattern.FindStringSubmatch(lowered); m != nil {
		minVal, okMin := parseAmount(m[1])
		maxVal, okMax := parseAmount(m[2])
		if !okMin || !okMax {
			return domain.Salary{}
		}
		minVal *= multiplier
		maxVal *= multiplier
		if minVal > maxVal {
			minVal, maxVal = maxVal, minVal
		}
		result.Min = &minVal
		result.Max = &maxVal
		return result
	}

	if m := salarySinglePattern.FindStringSubmatch(lowered); m != nil {
		val, ok := parseAmount(m[1])
		if !ok {
			return domain.Salary{}
		}
		val *= multiplier
		maxVal := val
		result.Min = &val
		result.Max = &maxVal
		return result
	}

	// No numbers at all: the whole result is null.
	return domain.Salary{}
}

// parseAmount converts a captured number to a float after stripping thousands
// separators.
func parseAmount(raw string) (float64, bool) {
	cleaned := strings.ReplaceAll(raw, ",", "")
	val, err := strconv.ParseFloat(strings.TrimSuffix(cleaned, "."), 64)
	if err != nil {
		return 0, false
	}
	return val, true
}
