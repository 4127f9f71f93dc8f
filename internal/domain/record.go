// Package domain defines the record types flowing through the normalization
// pipeline.
package domain

// RawRecord is a loosely-typed job posting as produced by one scraper.
// Keys vary by source ("position" vs "title"); the only field every scraper
// tags is "source".
type RawRecord map[string]any

// SourceKey is the provenance field every scraper sets on its records.
const SourceKey = "source"

// String returns the value for key rendered as a string, or "" when the key
// is absent, nil, or not a string.
func (r RawRecord) String(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}

// Source returns the record's source tag.
func (r RawRecord) Source() string {
	return r.String(SourceKey)
}

// Clone returns a shallow copy of the record. The pipeline never mutates its
// input batch; stages copy before renaming or cleaning fields.
func (r RawRecord) Clone() RawRecord {
	out := make(RawRecord, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Location is a structured location parsed from free text.
// Empty components serialize as absent; IsRemote is always present.
type Location struct {
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	Country  string `json:"country,omitempty"`
	IsRemote bool   `json:"is_remote"`
}

// Salary is a structured salary parsed from free text. Min and Max are nil
// when no number could be parsed; when only a single number is present both
// carry that value.
type Salary struct {
	Min      *float64 `json:"min"`
	Max      *float64 `json:"max"`
	Currency string   `json:"currency,omitempty"`
	Period   string   `json:"period,omitempty"`
}

// CanonicalRecord is a job posting in the unified schema, ready for loading.
// Derived fields that could not be computed are left zero-valued; the record
// itself is still emitted.
type CanonicalRecord struct {
	Title              string   `json:"title"`
	Company            string   `json:"company"`
	Location           string   `json:"location"`
	NormalizedLocation Location `json:"normalized_location"`
	Description        string   `json:"description"`
	URL                string   `json:"url,omitempty"`
	Salary             string   `json:"salary,omitempty"`
	SalaryMin          *float64 `json:"salary_min,omitempty"`
	SalaryMax          *float64 `json:"salary_max,omitempty"`
	SalaryCurrency     string   `json:"salary_currency,omitempty"`
	SalaryPeriod       string   `json:"salary_period,omitempty"`
	PostedDate         string   `json:"posted_date,omitempty"`
	ExtractedSkills    []string `json:"extracted_skills"`
	Source             string   `json:"source"`
}

// DedupKey is the (title, company) pair used to detect duplicate postings
// within a batch. Comparison is exact and case-sensitive, post-cleaning.
type DedupKey struct {
	Title   string
	Company string
}
