package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching serialized payloads
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// SiteSearcher fetches and parses one retailer's search results for a query.
// Implementations return the products extracted from the site's result page,
// already filtered and capped.
type SiteSearcher interface {
	SearchSite(ctx context.Context, site, query string, filters *SearchFilters) ([]Product, error)
}
