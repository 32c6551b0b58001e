package app

import (
	"modtagger/internal/adapters"
	"modtagger/internal/ports"
)

type Service struct {
	Catalog ports.ModRepositoryPort
	Store   ports.ModStorePort
}

type ServiceConfig struct {
	Catalog        string
	Store          string
	CatalogOptions adapters.CatalogOptions
}

// NewService wires the catalog and store adapters for cfg. An invalid
// catalog location leaves Catalog unset; operations needing it then fail
// with an invalid argument error.
func NewService(cfg ServiceConfig) Service {
	service := Service{
		Store: adapters.NewModStoreFileAdapter(cfg.Store),
	}
	if catalog, err := adapters.NewCatalogAdapter(cfg.Catalog, cfg.CatalogOptions); err == nil {
		service.Catalog = catalog
	}
	return service
}
