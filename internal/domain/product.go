package domain

// Product represents one normalized listing extracted from a retailer's
// search results page. A Product is only built when name, a positive price,
// website, and a resolvable URL were all extracted; partial listings are
// dropped by the parser rather than emitted with empty fields.
type Product struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Website     string  `json:"website"`
	URL         string  `json:"url"`
	Size        string  `json:"size,omitempty"`
	Color       string  `json:"color,omitempty"`
	Description string  `json:"description,omitempty"`
	InStock     bool    `json:"in_stock"`

	// ShippingTime and ReturnPolicy are filled in by the derived-query
	// services, never by the parser.
	ShippingTime *int   `json:"shipping_time,omitempty"` // days
	ReturnPolicy string `json:"return_policy,omitempty"`
}

// SearchFilters narrows search results. A nil pointer or empty string means
// the constraint is absent; a nil *SearchFilters passes every product.
type SearchFilters struct {
	MaxPrice *float64 `json:"max_price,omitempty"`
	MinPrice *float64 `json:"min_price,omitempty"`
	Size     string   `json:"size,omitempty"`
	Color    string   `json:"color,omitempty"`
}

// Matches reports whether p satisfies every constraint present in f.
func (f *SearchFilters) Matches(p *Product) bool {
	if f == nil {
		return true
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.Size != "" && p.Size != f.Size {
		return false
	}
	if f.Color != "" && p.Color != f.Color {
		return false
	}
	return true
}

// PriceComparison is the compact per-store projection returned by the price
// comparison service.
type PriceComparison struct {
	Store   string  `json:"store"`
	Price   float64 `json:"price"`
	URL     string  `json:"url"`
	InStock bool    `json:"in_stock"`
}

// SearchRequest represents a product search request.
type SearchRequest struct {
	Query   string         `json:"query" binding:"required"`
	Filters *SearchFilters `json:"filters,omitempty"`
}
