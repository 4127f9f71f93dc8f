// Package entityscanner provides clients for the optional NER sidecar that
// recognizes product, organization, and place entities in description text.
// The sidecar is an enrichment aid, not a dependency: callers fall back to
// the Nop scanner when it is absent or unhealthy.
package entityscanner

import (
	"context"
	"errors"

	"github.com/jonesrussell/job-normalizer/internal/enrich"
)

// ErrUnavailable indicates the NER sidecar is unreachable.
var ErrUnavailable = errors.New("entity scanner service unavailable")

// Nop is the scanner used when no sidecar is configured or reachable. It
// recognizes nothing and never fails.
type Nop struct{}

// NewNop creates a no-op scanner.
func NewNop() *Nop {
	return &Nop{}
}

// Scan returns no entities.
func (*Nop) Scan(_ context.Context, _ string) ([]enrich.Entity, error) {
	return nil, nil
}
