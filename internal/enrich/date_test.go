package enrich_test

import (
	"testing"
	"time"

	"github.com/jonesrussell/job-normalizer/internal/enrich"
)

func TestDateNormalizer_Normalize(t *testing.T) {
	// Fixed reference day so relative dates are deterministic.
	reference := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	normalizer := enrich.NewDateNormalizerWithClock(func() time.Time { return reference })

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "days ago",
			text: "3 days ago",
			want: "2025-01-07",
		},
		{
			name: "single day ago",
			text: "1 day ago",
			want: "2025-01-09",
		},
		{
			name: "weeks ago",
			text: "2 weeks ago",
			want: "2024-12-27",
		},
		{
			name: "months ago approximated as thirty days",
			text: "1 month ago",
			want: "2024-12-11",
		},
		{
			name: "iso date passes through",
			text: "2023-05-10",
			want: "2023-05-10",
		},
		{
			name: "ambiguous slash date reads day first",
			text: "10/03/2023",
			want: "2023-03-10",
		},
		{
			name: "slash date with day above twelve",
			text: "25/12/2023",
			want: "2023-12-25",
		},
		{
			name: "long month name",
			text: "January 5, 2023",
			want: "2023-01-05",
		},
		{
			name: "short month name",
			text: "Mar 3, 2024",
			want: "2024-03-03",
		},
		{
			name: "day first with month name",
			text: "15 March 2023",
			want: "2023-03-15",
		},
		{
			name: "mixed case input",
			text: "JANUARY 5, 2023",
			want: "2023-01-05",
		},
		{
			name: "unparseable text",
			text: "posted recently",
			want: "",
		},
		{
			name: "empty text",
			text: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizer.Normalize(tt.text)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
