package monitoring

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	SearchesTotal     *prometheus.CounterVec
	SiteFetchesTotal  *prometheus.CounterVec
	SiteFetchDuration *prometheus.HistogramVec
	ProductsExtracted *prometheus.CounterVec
	HTTPRequestsTotal *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec
}

// NewMetrics registers the application metrics with the default Prometheus
// registry. Call it once at startup.
func NewMetrics() *Metrics {
	return newMetrics(prometheus.DefaultRegisterer)
}

func newMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SearchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "shopscout_searches_total",
			Help: "The total number of product searches served",
		}, []string{"source"}), // 'live' or 'cache'
		SiteFetchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "shopscout_site_fetches_total",
			Help: "The total number of search-page fetches per site",
		}, []string{"site", "outcome"}), // outcome: 'ok' or 'error'
		SiteFetchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "shopscout_site_fetch_duration_seconds",
			Help:    "Time spent fetching one site's search page",
			Buckets: prometheus.DefBuckets,
		}, []string{"site"}),
		ProductsExtracted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "shopscout_products_extracted_total",
			Help: "The total number of products extracted per site",
		}, []string{"site"}),
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "shopscout_http_requests_total",
			Help: "The total number of HTTP requests handled",
		}, []string{"method", "path", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "shopscout_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}

// IncSearchesTotal counts one served search, labeled by whether it was
// answered live or from cache.
func (m *Metrics) IncSearchesTotal(source string) {
	if m == nil {
		return
	}
	m.SearchesTotal.WithLabelValues(source).Inc()
}

// ObserveSiteFetch records the outcome and duration of one site fetch.
func (m *Metrics) ObserveSiteFetch(site, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.SiteFetchesTotal.WithLabelValues(site, outcome).Inc()
	m.SiteFetchDuration.WithLabelValues(site).Observe(elapsed.Seconds())
}

// AddProductsExtracted counts products parsed out of one site's page.
func (m *Metrics) AddProductsExtracted(site string, count int) {
	if m == nil {
		return
	}
	m.ProductsExtracted.WithLabelValues(site).Add(float64(count))
}

// ObserveHTTPRequest records one handled HTTP request.
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}
