package enrich_test

import (
	"testing"

	"github.com/jonesrussell/job-normalizer/internal/domain"
	"github.com/jonesrussell/job-normalizer/internal/enrich"
)

func TestParseSalary(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantMin  float64
		wantMax  float64
		hasRange bool
		currency string
		period   string
	}{
		{
			name:     "k range with currency and period",
			text:     "$90k - $120k per year",
			wantMin:  90000,
			wantMax:  120000,
			hasRange: true,
			currency: "USD",
			period:   "year",
		},
		{
			name:     "comma separated range",
			text:     "£30,000 - £40,000 per year",
			wantMin:  30000,
			wantMax:  40000,
			hasRange: true,
			currency: "GBP",
			period:   "year",
		},
		{
			name:     "range with to separator",
			text:     "50k to 70k usd",
			wantMin:  50000,
			wantMax:  70000,
			hasRange: true,
			currency: "USD",
		},
		{
			name:     "inverted range is swapped",
			text:     "120k to 90k",
			wantMin:  90000,
			wantMax:  120000,
			hasRange: true,
		},
		{
			name:     "single amount fills both bounds",
			text:     "€60,000 annual",
			wantMin:  60000,
			wantMax:  60000,
			hasRange: true,
			currency: "EUR",
			period:   "year",
		},
		{
			name:     "hourly rate",
			text:     "$25/hour",
			wantMin:  25,
			wantMax:  25,
			hasRange: true,
			currency: "USD",
			period:   "hour",
		},
		{
			name: "no numbers yields all null",
			text: "Competitive salary",
		},
		{
			name: "empty text",
			text: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := enrich.ParseSalary(tt.text)

			if tt.hasRange {
				if got.Min == nil || got.Max == nil {
					t.Fatalf("ParseSalary(%q) = %+v, want min/max set", tt.text, got)
				}
				if *got.Min != tt.wantMin || *got.Max != tt.wantMax {
					t.Errorf("ParseSalary(%q) min/max = %v/%v, want %v/%v",
						tt.text, *got.Min, *got.Max, tt.wantMin, tt.wantMax)
				}
				if *got.Min > *got.Max {
					t.Errorf("ParseSalary(%q) min %v exceeds max %v", tt.text, *got.Min, *got.Max)
				}
			} else if got != (domain.Salary{}) {
				t.Errorf("ParseSalary(%q) = %+v, want all null", tt.text, got)
			}

			if got.Currency != tt.currency {
				t.Errorf("ParseSalary(%q) currency = %q, want %q", tt.text, got.Currency, tt.currency)
			}
			if got.Period != tt.period {
				t.Errorf("ParseSalary(%q) period = %q, want %q", tt.text, got.Period, tt.period)
			}
		})
	}
}
