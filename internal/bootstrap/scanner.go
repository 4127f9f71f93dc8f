package bootstrap

import (
	"context"

	"github.com/jonesrussell/job-normalizer/internal/config"
	"github.com/jonesrussell/job-normalizer/internal/enrich"
	"github.com/jonesrussell/job-normalizer/internal/entityscanner"
	"github.com/jonesrussell/job-normalizer/internal/logger"
)

// SetupScanner selects the entity scanner. The sidecar is health-checked
// once at startup; when it is disabled or unreachable the Nop scanner is
// selected and the degradation is logged a single time.
func SetupScanner(ctx context.Context, cfg *config.Config, log logger.Logger) enrich.EntityScanner {
	if !cfg.Scanner.Enabled {
		log.Info("entity scanner disabled, skill extraction is regex-only")
		return entityscanner.NewNop()
	}

	client := entityscanner.NewClient(cfg.Scanner.URL, cfg.Scanner.Timeout, cfg.Scanner.MaxRPS)
	if err := client.Health(ctx); err != nil {
		log.Warn("entity scanner unreachable, skill extraction is regex-only",
			logger.String("url", cfg.Scanner.URL),
			logger.Error(err))
		return entityscanner.NewNop()
	}

	log.Info("entity scanner connected", logger.String("url", cfg.Scanner.URL))
	return client
}
