package adapters

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"modtagger/internal/ports"
)

type CatalogOptions struct {
	APIKey       string
	TimeoutSec   int
	Retries      int
	RetryDelayMs int
}

// NewCatalogAdapter picks the catalog implementation for location: an
// http(s) URL selects the HTTP catalog, anything else a catalog file.
func NewCatalogAdapter(location string, opts CatalogOptions) (ports.ModRepositoryPort, error) {
	trimmed := strings.TrimSpace(location)
	if trimmed == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("catalog location is required")
	}
	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return NewCatalogHTTPAdapter(trimmed, opts.APIKey, opts.TimeoutSec, opts.Retries, opts.RetryDelayMs), nil
	}
	return NewCatalogFileAdapter(trimmed), nil
}
