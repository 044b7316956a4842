package catalog

import (
	"sort"
	"strings"
	"sync"

	"github.com/xw1nchester/stylequiz-backend/internal/brand"
	"github.com/xw1nchester/stylequiz-backend/internal/lib/text"
)

const (
	exactMatchScore     = 10
	prefixMatchScore    = 6
	similarityScale     = 4
	popularityScale     = 2
	similarityThreshold = 0.35
)

type record struct {
	brand.Brand

	// normalized forms of the name and every alias, precomputed on load
	tokens []string
}

// Catalog is the in-memory brand catalog. Records are replaced wholesale on
// load/reload; lookups only ever see active brands.
type Catalog struct {
	mu      sync.RWMutex
	records []record
	byID    map[string]int

	// max raw popularity per region, used to scale scores into [0..1] so
	// popularity reorders results within a match class but never above it
	popMax map[string]float64
}

func New() *Catalog {
	return &Catalog{
		byID:   make(map[string]int),
		popMax: make(map[string]float64),
	}
}

// Replace swaps the catalog contents and precomputes normalized tokens.
func (c *Catalog) Replace(brands []brand.Brand) {
	records := make([]record, 0, len(brands))
	byID := make(map[string]int, len(brands))
	popMax := make(map[string]float64)

	for _, b := range brands {
		tokens := make([]string, 0, len(b.Aliases)+1)
		tokens = append(tokens, text.Normalize(b.Name))
		for _, alias := range b.Aliases {
			tokens = append(tokens, text.Normalize(alias))
		}

		for region, score := range b.Popularity {
			if score > popMax[region] {
				popMax[region] = score
			}
		}

		byID[b.ID] = len(records)
		records = append(records, record{Brand: b, tokens: tokens})
	}

	c.mu.Lock()
	c.records = records
	c.byID = byID
	c.popMax = popMax
	c.mu.Unlock()
}

// Resolve returns the active brand with the given id.
func (c *Catalog) Resolve(id string) (*brand.Brand, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx, ok := c.byID[id]
	if !ok || !c.records[idx].IsActive {
		return nil, false
	}

	b := c.records[idx].Brand
	return &b, true
}

func (c *Catalog) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.records)
}

// Search ranks active brands against an already normalized query. The score
// combines alias matching (exact wins over prefix, no double counting), edit
// distance similarity above the noise threshold, regional popularity and tier
// weight. Candidates with a non-positive total are dropped. Ties keep catalog
// order (stable sort).
func (c *Catalog) Search(normalizedQuery string, tier brand.Tier, region string, limit int) []brand.Summary {
	c.mu.RLock()
	defer c.mu.RUnlock()

	type scored struct {
		summary brand.Summary
		score   float64
	}

	var candidates []scored

	for _, rec := range c.records {
		if !rec.IsActive {
			continue
		}
		if tier != "" && rec.Tier != tier {
			continue
		}

		var score float64

		exact := false
		prefix := false
		bestSimilarity := 0.0

		for _, token := range rec.tokens {
			if token == normalizedQuery {
				exact = true
			} else if strings.HasPrefix(token, normalizedQuery) {
				prefix = true
			}

			if sim := text.Similarity(normalizedQuery, token); sim > bestSimilarity {
				bestSimilarity = sim
			}
		}

		if exact {
			score += exactMatchScore
		} else if prefix {
			score += prefixMatchScore
		}

		if bestSimilarity >= similarityThreshold {
			score += similarityScale * bestSimilarity
		}

		if max := c.popMax[region]; max > 0 {
			score += popularityScale * rec.RegionPopularity(region) / max
		}
		score += rec.Tier.Weight()

		if score <= 0 {
			continue
		}

		candidates = append(candidates, scored{summary: rec.Brand.Summary(), score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	result := make([]brand.Summary, len(candidates))
	for i, c := range candidates {
		result[i] = c.summary
	}

	return result
}

// Popular returns active brands ordered by regional popularity.
func (c *Catalog) Popular(tier brand.Tier, region string, limit int) []brand.Summary {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var matched []record

	for _, rec := range c.records {
		if !rec.IsActive {
			continue
		}
		if tier != "" && rec.Tier != tier {
			continue
		}

		matched = append(matched, rec)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].RegionPopularity(region) > matched[j].RegionPopularity(region)
	})

	if len(matched) > limit {
		matched = matched[:limit]
	}

	result := make([]brand.Summary, len(matched))
	for i, rec := range matched {
		result[i] = rec.Brand.Summary()
	}

	return result
}
