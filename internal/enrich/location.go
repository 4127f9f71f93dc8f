package enrich

import (
	"regexp"
	"strings"

	"github.com/jonesrussell/job-normalizer/internal/domain"
)

// remoteOnlyPhrases are location strings that mean "fully remote" with no
// usable geography.
var remoteOnlyPhrases = map[string]struct{}{
	"remote":         {},
	"work from home": {},
	"wfh":            {},
}

var (
	remoteWordPattern = regexp.MustCompile(`\bremote\b`)

	// "City, XX" where XX is a two-letter uppercase region code.
	usLocationPattern = regexp.MustCompile(`^([^,]+),\s*([A-Z]{2})`)

	// "City, Country" split on the first comma.
	intlLocationPattern = regexp.MustCompile(`^([^,]+),\s*(.+)`)
)

// usCountry is assigned whenever the two-letter region form matches.
const usCountry = "United States"

// NormalizeLocation parses free-text location into structured components.
// Rules apply in a fixed order and only the first match wins:
//
//  1. blank text or a remote-only phrase -> remote, no geography
//  2. the word "remote" anywhere sets the remote flag, parsing continues
//  3. "City, XX" -> city, state, country=United States
//  4. "City, Country" -> city, country
//  5. the whole string is the city
func NormalizeLocation(location string) domain.Location {
	trimmed := strings.TrimSpace(location)
	if trimmed == "" {
		return domain.Location{IsRemote: true}
	}
	if _, ok := remoteOnlyPhrases[strings.ToLower(trimmed)]; ok {
		return domain.Location{IsRemote: true}
	}

	result := domain.Location{}

	// A location can carry a partial city/country alongside a remote flag,
	// e.g. "Remote - Berlin, Germany".
	if remoteWordPattern.MatchString(strings.ToLower(location)) {
		result.IsRemote = true
	}

	if m := usLocationPattern.FindStringSubmatch(location); m != nil {
		result.City = strings.TrimSpace(m[1])
		result.State = strings.TrimSpace(m[2])
		result.Country = usCountry
		return result
	}

	if m := intlLocationPattern.FindStringSubmatch(location); m != nil {
		result.City = strings.TrimSpace(m[1])
		result.Country = strings.TrimSpace(m[2])
		return result
	}

	result.City = trimmed
	return result
}
