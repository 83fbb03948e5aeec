package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopscout/backend/internal/domain"
	"github.com/shopscout/backend/internal/monitoring"
	"go.uber.org/zap"
)

// Package-level compiled regex patterns for performance
var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
)

// SearchServiceConfig holds configuration for the search service
type SearchServiceConfig struct {
	CacheTTL time.Duration
}

// SearchService coordinates product searches across every registered retail
// site and merges the results into one price-sorted list.
type SearchService struct {
	sites    []string
	searcher domain.SiteSearcher
	cache    domain.CacheRepository
	cacheTTL time.Duration
	logger   *zap.Logger
	metrics  *monitoring.Metrics
}

// NewSearchService creates a new search service. cache and metrics may be
// nil, which disables result caching and metric collection respectively.
func NewSearchService(
	sites []string,
	searcher domain.SiteSearcher,
	cache domain.CacheRepository,
	config SearchServiceConfig,
	logger *zap.Logger,
	metrics *monitoring.Metrics,
) *SearchService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 15 * time.Minute
	}

	return &SearchService{
		sites:    sites,
		searcher: searcher,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
		metrics:  metrics,
	}
}

// SearchProducts looks up products matching the query on every registered
// site. Flow: check cache -> fan out one worker per site -> merge -> sort by
// price -> cache.
//
// Per-site failures are contained: a site that errors or returns nothing
// contributes an empty list and the remaining sites are unaffected. All sites
// failing still succeeds with an empty result.
func (s *SearchService) SearchProducts(ctx context.Context, query string, filters *domain.SearchFilters) ([]domain.Product, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.ErrInvalidQuery
	}

	cacheKey := s.generateCacheKey(query, filters)
	if cached, err := s.getFromCache(ctx, cacheKey); err == nil {
		s.metrics.IncSearchesTotal("cache")
		s.logger.Debug("search served from cache",
			zap.String("query", query),
			zap.Int("products", len(cached)))
		return cached, nil
	} else if !errors.Is(err, domain.ErrCacheMiss) {
		s.logger.Warn("cache read failed, falling back to live search",
			zap.String("query", query),
			zap.Error(err))
	}

	// One worker per site, each writing into its own slot. Workers share
	// only read-only state; merging happens after the join.
	results := make([][]domain.Product, len(s.sites))
	var wg sync.WaitGroup
	for i, site := range s.sites {
		wg.Add(1)
		go func(slot int, site string) {
			defer wg.Done()

			products, err := s.searcher.SearchSite(ctx, site, query, filters)
			if err != nil {
				s.logger.Warn("site search failed",
					zap.String("site", site),
					zap.String("query", query),
					zap.Error(err))
				return
			}
			results[slot] = products
		}(i, site)
	}
	wg.Wait()

	merged := make([]domain.Product, 0)
	for _, siteProducts := range results {
		merged = append(merged, siteProducts...)
	}

	// Price is the only sort key; ties keep merge order.
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Price < merged[j].Price
	})

	s.metrics.IncSearchesTotal("live")
	s.logger.Info("search completed",
		zap.String("query", query),
		zap.Int("sites", len(s.sites)),
		zap.Int("products", len(merged)))

	// Empty results are not cached so transient site failures don't stick.
	if len(merged) > 0 {
		if err := s.setInCache(ctx, cacheKey, merged); err != nil {
			s.logger.Warn("failed to cache search results",
				zap.String("query", query),
				zap.Error(err))
		}
	}

	return merged, nil
}

// ComparePrices searches every site for the product name and projects the
// results into per-store price entries, cheapest first.
func (s *SearchService) ComparePrices(ctx context.Context, productName string) ([]domain.PriceComparison, error) {
	products, err := s.SearchProducts(ctx, productName, nil)
	if err != nil {
		return nil, err
	}

	comparisons := make([]domain.PriceComparison, 0, len(products))
	for _, p := range products {
		comparisons = append(comparisons, domain.PriceComparison{
			Store:   p.Website,
			Price:   p.Price,
			URL:     p.URL,
			InStock: p.InStock,
		})
	}
	return comparisons, nil
}

// generateCacheKey creates a normalized cache key from the query and filters.
// Format: "search:{normalized_query}:{filter_fingerprint}"
func (s *SearchService) generateCacheKey(query string, filters *domain.SearchFilters) string {
	return fmt.Sprintf("search:%s:%s", normalizeForCacheKey(query), filterFingerprint(filters))
}

// normalizeForCacheKey normalizes a string for use as a cache key component.
// Converts to lowercase, removes special characters, and trims whitespace.
func normalizeForCacheKey(s string) string {
	if s == "" {
		return ""
	}
	result := strings.ToLower(s)
	result = nonAlphanumericRegex.ReplaceAllString(result, "")
	result = multipleSpacesRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

// filterFingerprint renders the filters into a stable key component. Size and
// color are kept verbatim because filter matching is case-sensitive.
func filterFingerprint(f *domain.SearchFilters) string {
	if f == nil {
		return "none"
	}

	var parts []string
	if f.MaxPrice != nil {
		parts = append(parts, fmt.Sprintf("max=%.2f", *f.MaxPrice))
	}
	if f.MinPrice != nil {
		parts = append(parts, fmt.Sprintf("min=%.2f", *f.MinPrice))
	}
	if f.Size != "" {
		parts = append(parts, "size="+f.Size)
	}
	if f.Color != "" {
		parts = append(parts, "color="+f.Color)
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ",")
}

// getFromCache retrieves cached search results. A nil cache and undecodable
// entries read as misses; other cache errors pass through.
func (s *SearchService) getFromCache(ctx context.Context, key string) ([]domain.Product, error) {
	if s.cache == nil {
		return nil, domain.ErrCacheMiss
	}

	payload, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var products []domain.Product
	if err := json.Unmarshal(payload, &products); err != nil {
		s.logger.Warn("discarding undecodable cache entry", zap.String("key", key), zap.Error(err))
		return nil, domain.ErrCacheMiss
	}
	return products, nil
}

// setInCache stores search results in the cache.
func (s *SearchService) setInCache(ctx context.Context, key string, products []domain.Product) error {
	if s.cache == nil {
		return nil
	}

	payload, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, key, payload, s.cacheTTL)
}
