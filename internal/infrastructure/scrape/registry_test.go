package scrape

import "testing"

func TestSearchURL(t *testing.T) {
	tests := []struct {
		name  string
		site  Site
		query string
		want  string
	}{
		{
			name:  "amazon search path",
			site:  Site{Domain: "amazon.com", QueryPath: "s?k="},
			query: "laptop",
			want:  "https://www.amazon.com/s?k=laptop",
		},
		{
			name:  "walmart search path",
			site:  Site{Domain: "walmart.com", QueryPath: "search?q="},
			query: "laptop",
			want:  "https://www.walmart.com/search?q=laptop",
		},
		{
			name:  "target search path",
			site:  Site{Domain: "target.com", QueryPath: "s?searchTerm="},
			query: "laptop",
			want:  "https://www.target.com/s?searchTerm=laptop",
		},
		{
			name:  "ebay search path",
			site:  Site{Domain: "ebay.com", QueryPath: "sch/i.html?_nkw="},
			query: "laptop",
			want:  "https://www.ebay.com/sch/i.html?_nkw=laptop",
		},
		{
			name:  "spaces encoded as plus",
			site:  Site{Domain: "amazon.com", QueryPath: "s?k="},
			query: "blue denim jacket",
			want:  "https://www.amazon.com/s?k=blue+denim+jacket",
		},
		{
			name:  "reserved characters escaped",
			site:  Site{Domain: "amazon.com", QueryPath: "s?k="},
			query: "50% cotton & wool",
			want:  "https://www.amazon.com/s?k=50%25+cotton+%26+wool",
		},
		{
			name:  "base URL override",
			site:  Site{Domain: "amazon.com", QueryPath: "s?k=", BaseURL: "http://127.0.0.1:9999"},
			query: "laptop",
			want:  "http://127.0.0.1:9999/s?k=laptop",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.site.SearchURL(tt.query); got != tt.want {
				t.Errorf("SearchURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRegistryLookup(t *testing.T) {
	registry := NewRegistry(DefaultSites())

	site, ok := registry.Lookup("amazon.com")
	if !ok {
		t.Fatal("expected amazon.com to be registered")
	}
	if site.Rules == nil {
		t.Error("expected amazon.com to carry extraction rules")
	}

	// Lookup tolerates case and whitespace noise.
	if _, ok := registry.Lookup("  Amazon.com "); !ok {
		t.Error("expected lookup to normalize domain")
	}

	if _, ok := registry.Lookup("bestbuy.com"); ok {
		t.Error("expected unregistered domain to miss")
	}
}

func TestRegistryDomainsOrder(t *testing.T) {
	registry := NewRegistry(DefaultSites())

	want := []string{"amazon.com", "walmart.com", "target.com", "ebay.com", "flipkart.com"}
	got := registry.Domains()
	if len(got) != len(want) {
		t.Fatalf("Domains() returned %d domains, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Domains()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if registry.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", registry.Len(), len(want))
	}
}

func TestRegistryDuplicateDomainReplaces(t *testing.T) {
	registry := NewRegistry([]Site{
		{Domain: "amazon.com", QueryPath: "s?k="},
		{Domain: "Amazon.com", QueryPath: "search?q="},
	})

	if registry.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", registry.Len())
	}
	site, _ := registry.Lookup("amazon.com")
	if site.QueryPath != "search?q=" {
		t.Errorf("expected later registration to win, got QueryPath %q", site.QueryPath)
	}
}

func TestDefaultSitesRules(t *testing.T) {
	withRules := map[string]bool{}
	for _, site := range DefaultSites() {
		if site.Rules != nil {
			withRules[site.Domain] = true
		}
	}

	if !withRules["amazon.com"] || !withRules["walmart.com"] {
		t.Errorf("expected amazon.com and walmart.com to have rules, got %v", withRules)
	}
	if len(withRules) != 2 {
		t.Errorf("expected exactly 2 sites with rules, got %v", withRules)
	}
}
