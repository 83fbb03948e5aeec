package scrape

import (
	"context"
	"time"

	"github.com/shopscout/backend/internal/domain"
	"github.com/shopscout/backend/internal/monitoring"
	"go.uber.org/zap"
)

// Pipeline runs the fetch→parse sequence for a single site. It implements
// domain.SiteSearcher for the aggregation layer.
type Pipeline struct {
	registry *Registry
	fetcher  *Fetcher
	logger   *zap.Logger
	metrics  *monitoring.Metrics
}

// NewPipeline creates a pipeline over the given registry and fetcher.
// metrics may be nil.
func NewPipeline(registry *Registry, fetcher *Fetcher, logger *zap.Logger, metrics *monitoring.Metrics) *Pipeline {
	return &Pipeline{
		registry: registry,
		fetcher:  fetcher,
		logger:   logger,
		metrics:  metrics,
	}
}

// SearchSite fetches one site's search results page for the query and parses
// it into filtered products. Sites not present in the registry, and sites
// without extraction rules, produce no products and no error.
func (p *Pipeline) SearchSite(ctx context.Context, site, query string, filters *domain.SearchFilters) ([]domain.Product, error) {
	entry, ok := p.registry.Lookup(site)
	if !ok {
		p.logger.Debug("skipping unregistered site", zap.String("site", site))
		return nil, nil
	}

	start := time.Now()
	body, err := p.fetcher.Fetch(ctx, entry, query)
	if err != nil {
		p.metrics.ObserveSiteFetch(entry.Domain, "error", time.Since(start))
		return nil, err
	}
	p.metrics.ObserveSiteFetch(entry.Domain, "ok", time.Since(start))

	products, err := ParseProducts(entry.Domain, entry.Rules, body, filters)
	if err != nil {
		return nil, err
	}
	p.metrics.AddProductsExtracted(entry.Domain, len(products))

	p.logger.Debug("site search completed",
		zap.String("site", entry.Domain),
		zap.String("query", query),
		zap.Int("products", len(products)),
		zap.Duration("elapsed", time.Since(start)))

	return products, nil
}
