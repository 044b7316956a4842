package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xw1nchester/stylequiz-backend/internal/brand"
	"github.com/xw1nchester/stylequiz-backend/internal/lib/text"
)

func seededCatalog() *Catalog {
	c := New()
	c.Replace([]brand.Brand{
		{
			ID:         "zara",
			Name:       "Zara",
			Aliases:    []string{"zarra", "зара"},
			Tier:       brand.TierMass,
			Popularity: map[string]float64{"ru": 100},
			IsActive:   true,
		},
		{
			ID:         "cos",
			Name:       "COS",
			Aliases:    []string{"косс"},
			Tier:       brand.TierPremium,
			Popularity: map[string]float64{"ru": 40},
			IsActive:   true,
		},
		{
			ID:         "gucci",
			Name:       "Gucci",
			Aliases:    []string{"гуччи"},
			Tier:       brand.TierLuxury,
			Popularity: map[string]float64{"ru": 60, "kz": 20},
			IsActive:   true,
		},
		{
			ID:       "defunct",
			Name:     "Defunct Wear",
			Tier:     brand.TierMass,
			IsActive: false,
		},
	})
	return c
}

func search(c *Catalog, query string, tier brand.Tier, limit int) []brand.Summary {
	return c.Search(text.Normalize(query), tier, "ru", limit)
}

func TestSearchAliasMatch(t *testing.T) {
	c := seededCatalog()

	results := search(c, "zarra", "", 8)

	require.NotEmpty(t, results)
	assert.Equal(t, "Zara", results[0].Name)
}

func TestSearchCyrillicAliasMatch(t *testing.T) {
	c := seededCatalog()

	results := search(c, "косс", "", 8)

	require.NotEmpty(t, results)
	assert.Equal(t, "COS", results[0].Name)
}

func TestSearchTierFilterExcludes(t *testing.T) {
	c := seededCatalog()

	results := search(c, "zara", brand.TierPremium, 8)

	for _, item := range results {
		assert.Equal(t, brand.TierPremium, item.Tier)
	}
}

func TestSearchExactOutranksPrefixOutranksFuzzy(t *testing.T) {
	c := New()
	// identical popularity and tier so only the match kind decides
	c.Replace([]brand.Brand{
		{ID: "a", Name: "Zar", Tier: brand.TierMass, IsActive: true},
		{ID: "b", Name: "Zara", Tier: brand.TierMass, IsActive: true},
		{ID: "c", Name: "Zarathustra", Tier: brand.TierMass, IsActive: true},
	})

	results := search(c, "zara", "", 8)

	require.Len(t, results, 3)
	assert.Equal(t, "Zara", results[0].Name)        // exact
	assert.Equal(t, "Zarathustra", results[1].Name) // prefix
	assert.Equal(t, "Zar", results[2].Name)         // fuzzy only
}

func TestSearchExcludesInactive(t *testing.T) {
	c := seededCatalog()

	results := search(c, "defunct", "", 8)

	// active brands still surface through popularity, the inactive one never does
	for _, item := range results {
		assert.NotEqual(t, "Defunct Wear", item.Name)
	}
}

func TestSearchLimit(t *testing.T) {
	c := seededCatalog()

	// popularity alone makes every active brand score positive
	results := search(c, "zz", "", 2)

	assert.Len(t, results, 2)
}

func TestSearchProjectionOmitsInternals(t *testing.T) {
	c := seededCatalog()

	results := search(c, "zara", "", 1)

	require.Len(t, results, 1)
	assert.Equal(t, brand.Summary{ID: "zara", Name: "Zara", Tier: brand.TierMass}, results[0])
}

func TestPopularOrdering(t *testing.T) {
	c := seededCatalog()

	results := c.Popular("", "ru", 16)

	require.Len(t, results, 3)
	assert.Equal(t, []string{"Zara", "Gucci", "COS"}, []string{results[0].Name, results[1].Name, results[2].Name})
}

func TestPopularUnknownRegionKeepsCatalogOrder(t *testing.T) {
	c := seededCatalog()

	results := c.Popular("", "fr", 16)

	require.Len(t, results, 3)
	// every score is 0, stable sort keeps seed order
	assert.Equal(t, "Zara", results[0].Name)
}

func TestPopularTierFilter(t *testing.T) {
	c := seededCatalog()

	results := c.Popular(brand.TierLuxury, "ru", 16)

	require.Len(t, results, 1)
	assert.Equal(t, "Gucci", results[0].Name)
}

func TestResolve(t *testing.T) {
	c := seededCatalog()

	b, ok := c.Resolve("zara")
	require.True(t, ok)
	assert.Equal(t, "Zara", b.Name)

	_, ok = c.Resolve("defunct")
	assert.False(t, ok)

	_, ok = c.Resolve("missing")
	assert.False(t, ok)
}

func TestReplaceSwapsContents(t *testing.T) {
	c := seededCatalog()

	c.Replace([]brand.Brand{
		{ID: "uniqlo", Name: "Uniqlo", Tier: brand.TierMass, IsActive: true},
	})

	assert.Equal(t, 1, c.Size())

	_, ok := c.Resolve("zara")
	assert.False(t, ok)

	_, ok = c.Resolve("uniqlo")
	assert.True(t, ok)
}
