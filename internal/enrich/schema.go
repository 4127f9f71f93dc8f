package enrich

import "github.com/jonesrussell/job-normalizer/internal/domain"

type fieldRename struct {
	variant   string
	canonical string
}

// canonicalFieldNames maps known source-specific field names onto the
// canonical schema. Order matters when two variants of the same canonical
// field appear in one record: the earlier entry wins. Unrecognized fields
// pass through untouched.
var canonicalFieldNames = []fieldRename{
	{"position", "title"},
	{"job_title", "title"},
	{"company_name", "company"},
	{"description_snippet", "description"},
	{"full_description", "description"},
	{"job_description", "description"},
	{"date", "posted_date"},
	{"created", "posted_date"},
}

// UnifySchema returns a copy of the record with known field-name variants
// renamed onto the canonical field set. It is idempotent: already-canonical
// keys are left alone, and a variant never overwrites a canonical key that
// is already present.
func UnifySchema(record domain.RawRecord) domain.RawRecord {
	out := record.Clone()

	for _, rename := range canonicalFieldNames {
		value, ok := out[rename.variant]
		if !ok {
			continue
		}
		delete(out, rename.variant)
		if _, exists := out[rename.canonical]; exists {
			continue
		}
		out[rename.canonical] = value
	}

	return out
}
