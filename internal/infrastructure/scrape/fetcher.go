package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopscout/backend/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	defaultRequestTimeout = 10 * time.Second
	defaultMaxBodyBytes   = 10 * 1024 * 1024 // 10 MB
	defaultRatePerSec     = 1.0
	defaultRateBurst      = 2
)

// FetcherConfig tunes the outbound HTTP behavior of the fetcher.
type FetcherConfig struct {
	// RequestTimeout bounds each search-page GET.
	RequestTimeout time.Duration
	// MaxBodyBytes caps how much of a response body is read.
	MaxBodyBytes int64
	// SiteRatePerSec is the sustained request rate allowed per site.
	SiteRatePerSec float64
	// SiteRateBurst is the burst size allowed per site.
	SiteRateBurst int
}

func (c FetcherConfig) withDefaults() FetcherConfig {
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = defaultRequestTimeout
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = defaultMaxBodyBytes
	}
	if c.SiteRatePerSec <= 0 {
		c.SiteRatePerSec = defaultRatePerSec
	}
	if c.SiteRateBurst <= 0 {
		c.SiteRateBurst = defaultRateBurst
	}
	return c
}

// Fetcher retrieves search results pages from registered retail sites. Each
// site gets its own rate limiter so concurrent searches don't hammer a single
// retailer.
type Fetcher struct {
	httpClient   *http.Client
	limiters     map[string]*rate.Limiter
	maxBodyBytes int64
	logger       *zap.Logger
}

// NewFetcher creates a fetcher with one rate limiter per site in the
// registry.
func NewFetcher(registry *Registry, cfg FetcherConfig, logger *zap.Logger) *Fetcher {
	cfg = cfg.withDefaults()

	limiters := make(map[string]*rate.Limiter, registry.Len())
	for _, site := range registry.All() {
		limiters[normalizeDomain(site.Domain)] = rate.NewLimiter(rate.Limit(cfg.SiteRatePerSec), cfg.SiteRateBurst)
	}

	return &Fetcher{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		limiters:     limiters,
		maxBodyBytes: cfg.MaxBodyBytes,
		logger:       logger,
	}
}

// Fetch performs one GET against the site's search URL for the query and
// returns the raw page body. Retail sites serve parseable markup on many
// non-2xx statuses, so the body is returned regardless of status code; only
// transport-level failures are errors.
func (f *Fetcher) Fetch(ctx context.Context, site Site, query string) ([]byte, error) {
	if limiter := f.limiters[normalizeDomain(site.Domain)]; limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter wait: %w", err)
		}
	}

	reqURL := site.SearchURL(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", randomUserAgent())
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrFetchFailed, site.Domain, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: reading body: %v", domain.ErrFetchFailed, site.Domain, err)
	}

	if resp.StatusCode != http.StatusOK {
		f.logger.Debug("non-200 search page response",
			zap.String("site", site.Domain),
			zap.Int("status", resp.StatusCode),
			zap.Int("body_bytes", len(body)))
	}

	return body, nil
}
