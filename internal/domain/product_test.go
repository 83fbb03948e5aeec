package domain

import "testing"

func floatPtr(v float64) *float64 { return &v }

func TestSearchFiltersMatches(t *testing.T) {
	product := Product{
		Name:    "Blue Denim Jacket",
		Price:   49.99,
		Website: "amazon.com",
		URL:     "https://www.amazon.com/jacket",
		Size:    "M",
		Color:   "blue",
	}

	tests := []struct {
		name    string
		filters *SearchFilters
		want    bool
	}{
		{
			name:    "nil filters matches everything",
			filters: nil,
			want:    true,
		},
		{
			name:    "empty filters matches everything",
			filters: &SearchFilters{},
			want:    true,
		},
		{
			name:    "max price above product price",
			filters: &SearchFilters{MaxPrice: floatPtr(50.00)},
			want:    true,
		},
		{
			name:    "max price below product price",
			filters: &SearchFilters{MaxPrice: floatPtr(40.00)},
			want:    false,
		},
		{
			name:    "max price equal to product price",
			filters: &SearchFilters{MaxPrice: floatPtr(49.99)},
			want:    true,
		},
		{
			name:    "min price below product price",
			filters: &SearchFilters{MinPrice: floatPtr(20.00)},
			want:    true,
		},
		{
			name:    "min price above product price",
			filters: &SearchFilters{MinPrice: floatPtr(60.00)},
			want:    false,
		},
		{
			name:    "price range containing product",
			filters: &SearchFilters{MinPrice: floatPtr(40.00), MaxPrice: floatPtr(60.00)},
			want:    true,
		},
		{
			name:    "matching size",
			filters: &SearchFilters{Size: "M"},
			want:    true,
		},
		{
			name:    "mismatched size",
			filters: &SearchFilters{Size: "XL"},
			want:    false,
		},
		{
			name:    "size comparison is exact",
			filters: &SearchFilters{Size: "m"},
			want:    false,
		},
		{
			name:    "matching color",
			filters: &SearchFilters{Color: "blue"},
			want:    true,
		},
		{
			name:    "color comparison is exact",
			filters: &SearchFilters{Color: "Blue"},
			want:    false,
		},
		{
			name:    "mismatched color",
			filters: &SearchFilters{Color: "red"},
			want:    false,
		},
		{
			name:    "combined filters all matching",
			filters: &SearchFilters{MaxPrice: floatPtr(50.00), Size: "M", Color: "blue"},
			want:    true,
		},
		{
			name:    "combined filters one failing",
			filters: &SearchFilters{MaxPrice: floatPtr(50.00), Size: "S"},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filters.Matches(&product); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSearchFiltersMatchesProductWithoutAttributes(t *testing.T) {
	// Scraped listings rarely carry size or color; attribute filters
	// must not match a product that lacks the attribute.
	bare := Product{Name: "Jacket", Price: 30.00, Website: "ebay.com"}

	if got := (&SearchFilters{Size: "M"}).Matches(&bare); got {
		t.Error("expected size filter to reject product without size")
	}
	if got := (&SearchFilters{Color: "blue"}).Matches(&bare); got {
		t.Error("expected color filter to reject product without color")
	}
	if got := (&SearchFilters{MaxPrice: floatPtr(35.00)}).Matches(&bare); !got {
		t.Error("expected price filter to match product without attributes")
	}
}
