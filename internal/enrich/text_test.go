package enrich_test

import (
	"testing"

	"github.com/jonesrussell/job-normalizer/internal/enrich"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "strips html tags",
			text: "<p>Senior <b>Go</b> Engineer</p>",
			want: "Senior Go Engineer",
		},
		{
			name: "collapses whitespace runs",
			text: "Build   distributed\n\tsystems",
			want: "Build distributed systems",
		},
		{
			name: "trims leading and trailing space",
			text: "  hands-on role  ",
			want: "hands-on role",
		},
		{
			name: "tag replaced by space keeps words apart",
			text: "Go<br>Python",
			want: "Go Python",
		},
		{
			name: "empty input",
			text: "",
			want: "",
		},
		{
			name: "whitespace only",
			text: "   \n\t  ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := enrich.CleanText(tt.text)
			if got != tt.want {
				t.Errorf("CleanText() = %q, want %q", got, tt.want)
			}

			// Cleaning is idempotent.
			if again := enrich.CleanText(got); again != got {
				t.Errorf("CleanText() not idempotent: %q -> %q", got, again)
			}
		})
	}
}
