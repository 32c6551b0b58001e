package cli

import (
	"github.com/spf13/cobra"

	"modtagger/internal/adapters"
	"modtagger/internal/app"
)

func newAppService(cmd *cobra.Command, cfg *RootConfig) app.Service {
	return app.NewService(app.ServiceConfig{
		Catalog: resolveString(cmd, cfg.Catalog, "catalog", "catalog"),
		Store:   resolveString(cmd, cfg.Store, "store", "store"),
		CatalogOptions: adapters.CatalogOptions{
			APIKey:       resolveString(cmd, cfg.Catalogs.APIKey, "catalog_api_key", "catalog-api-key"),
			TimeoutSec:   resolveInt(cmd, cfg.Catalogs.TimeoutSec, "catalog_timeout", "catalog-timeout"),
			Retries:      resolveInt(cmd, cfg.Catalogs.Retries, "catalog_retries", "catalog-retries"),
			RetryDelayMs: resolveInt(cmd, cfg.Catalogs.RetryDelayMs, "catalog_retry_delay_ms", "catalog-retry-delay-ms"),
		},
	})
}
