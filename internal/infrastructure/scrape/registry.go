package scrape

import (
	"net/url"
	"strings"
)

// ExtractionRules holds the CSS selectors used to pull product listings out of
// one retailer's search results page.
type ExtractionRules struct {
	Container string // selector for one product listing
	Name      string // selector for the product title, within a container
	Price     string // selector for the price text, within a container
	Link      string // selector for the product anchor, within a container
}

// Site describes one retailer the pipeline knows how to search.
type Site struct {
	// Domain is the retailer's bare domain, e.g. "amazon.com".
	Domain string
	// QueryPath is the search path prefix the encoded query is appended to,
	// e.g. "s?k=".
	QueryPath string
	// BaseURL overrides the default "https://www.<Domain>" origin. Used by
	// tests to point the fetcher at a local server.
	BaseURL string
	// Rules are the extraction selectors for this site. Sites without rules
	// are still fetched but yield no products.
	Rules *ExtractionRules
}

// SearchURL builds the search results URL for the given query.
func (s Site) SearchURL(query string) string {
	base := s.BaseURL
	if base == "" {
		base = "https://www." + s.Domain
	}
	return base + "/" + s.QueryPath + url.QueryEscape(query)
}

// Registry is the read-only set of sites the pipeline searches. It is built
// once at startup and safe for concurrent use.
type Registry struct {
	sites    []Site
	byDomain map[string]Site
}

// NewRegistry builds a registry from the given sites. Later entries with a
// duplicate domain replace earlier ones.
func NewRegistry(sites []Site) *Registry {
	r := &Registry{
		byDomain: make(map[string]Site, len(sites)),
	}
	for _, s := range sites {
		key := normalizeDomain(s.Domain)
		if _, exists := r.byDomain[key]; !exists {
			r.sites = append(r.sites, s)
		} else {
			for i := range r.sites {
				if normalizeDomain(r.sites[i].Domain) == key {
					r.sites[i] = s
					break
				}
			}
		}
		r.byDomain[key] = s
	}
	return r
}

// Lookup returns the site registered for the given domain.
func (r *Registry) Lookup(domain string) (Site, bool) {
	s, ok := r.byDomain[normalizeDomain(domain)]
	return s, ok
}

// Domains returns the registered domains in registration order.
func (r *Registry) Domains() []string {
	domains := make([]string, len(r.sites))
	for i, s := range r.sites {
		domains[i] = s.Domain
	}
	return domains
}

// All returns the registered sites in registration order.
func (r *Registry) All() []Site {
	out := make([]Site, len(r.sites))
	copy(out, r.sites)
	return out
}

// Len returns the number of registered sites.
func (r *Registry) Len() int {
	return len(r.sites)
}

func normalizeDomain(domain string) string {
	return strings.ToLower(strings.TrimSpace(domain))
}

// DefaultSites returns the retailers searched out of the box. Only Amazon and
// Walmart carry extraction rules; the others are fetched but produce no
// products until selectors are added for them.
func DefaultSites() []Site {
	return []Site{
		{
			Domain:    "amazon.com",
			QueryPath: "s?k=",
			Rules: &ExtractionRules{
				Container: ".s-result-item",
				Name:      ".a-text-normal",
				Price:     ".a-price-whole",
				Link:      "a.a-link-normal",
			},
		},
		{
			Domain:    "walmart.com",
			QueryPath: "search?q=",
			Rules: &ExtractionRules{
				Container: ".search-result-product",
				Name:      ".product-title-link",
				Price:     ".price-main",
				Link:      "a.product-title-link",
			},
		},
		{
			Domain:    "target.com",
			QueryPath: "s?searchTerm=",
		},
		{
			Domain:    "ebay.com",
			QueryPath: "sch/i.html?_nkw=",
		},
		{
			Domain:    "flipkart.com",
			QueryPath: "search?q=",
		},
	}
}
