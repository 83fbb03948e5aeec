package scrape

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopscout/backend/internal/domain"
)

// maxProductsPerSite caps how many listings one site contributes per search.
// The first matching listings in document order win, not the cheapest.
const maxProductsPerSite = 5

// ParseProducts extracts product listings from a site's raw search results
// page. Listings missing a name, price, or link are skipped; so are listings
// whose price doesn't parse to a positive number or that fail the filters.
// Sites without extraction rules yield no products.
func ParseProducts(site string, rules *ExtractionRules, body []byte, filters *domain.SearchFilters) ([]domain.Product, error) {
	if rules == nil {
		return nil, nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing %s results page: %w", site, err)
	}

	var products []domain.Product
	doc.Find(rules.Container).EachWithBreak(func(_ int, listing *goquery.Selection) bool {
		name := strings.TrimSpace(listing.Find(rules.Name).First().Text())
		priceText := strings.TrimSpace(listing.Find(rules.Price).First().Text())
		href, _ := listing.Find(rules.Link).First().Attr("href")
		if name == "" || priceText == "" || href == "" {
			return true
		}

		price := cleanPrice(priceText)
		if price <= 0 {
			return true
		}

		product := domain.Product{
			Name:    name,
			Price:   price,
			Website: site,
			URL:     cleanURL(href, site),
			InStock: true,
		}
		if !filters.Matches(&product) {
			return true
		}

		products = append(products, product)
		return len(products) < maxProductsPerSite
	})

	return products, nil
}

// cleanPrice parses a price out of scraped text like "$1,299.99" or
// "49.99 USD". Anything that doesn't reduce to a parseable number is 0.
func cleanPrice(raw string) float64 {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	price, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return price
}

// cleanURL resolves scraped hrefs to absolute URLs. Relative paths are
// anchored at the site's www origin; already-absolute URLs pass through.
func cleanURL(raw, site string) string {
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	if !strings.HasPrefix(raw, "/") {
		raw = "/" + raw
	}
	return "https://www." + site + raw
}
