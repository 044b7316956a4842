package service

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/xw1nchester/stylequiz-backend/internal/brand"
	"github.com/xw1nchester/stylequiz-backend/internal/brand/catalog"
	"github.com/xw1nchester/stylequiz-backend/internal/lib/cache"
	"github.com/xw1nchester/stylequiz-backend/internal/lib/text"
	"go.uber.org/zap"
)

const (
	// queries shorter than this after normalization are answered with an
	// empty result, no catalog scan and no cache write
	minQueryLength = 2

	defaultSearchLimit  = 8
	defaultPopularLimit = 16
	maxLimit            = 20
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockbrandservice
type Repository interface {
	GetActiveBrands(ctx context.Context) ([]brand.Brand, error)
}

type Config struct {
	DefaultRegion string
	SearchTTL     time.Duration
	PopularTTL    time.Duration
}

type service struct {
	repository   Repository
	catalog      *catalog.Catalog
	cfg          Config
	searchCache  *cache.Cache[[]brand.Summary]
	popularCache *cache.Cache[[]brand.Summary]
	logger       *zap.Logger
}

func New(repository Repository, cfg Config, logger *zap.Logger) *service {
	return &service{
		repository:   repository,
		catalog:      catalog.New(),
		cfg:          cfg,
		searchCache:  cache.New[[]brand.Summary](),
		popularCache: cache.New[[]brand.Summary](),
		logger:       logger,
	}
}

// Reload replaces the in-memory catalog from storage and drops cached
// results. Called once at startup and on demand from the admin surface.
func (s *service) Reload(ctx context.Context) error {
	brands, err := s.repository.GetActiveBrands(ctx)
	if err != nil {
		s.logger.Error("unexpected error when loading brand catalog", zap.Error(err))
		return err
	}

	s.catalog.Replace(brands)
	s.searchCache.Clear()
	s.popularCache.Clear()

	s.logger.Info("brand catalog loaded", zap.Int("count", len(brands)))

	return nil
}

func (s *service) Search(query string, tier brand.Tier, region string, limit int) []brand.Summary {
	normalized := text.Normalize(query)
	if utf8.RuneCountInString(normalized) < minQueryLength {
		return []brand.Summary{}
	}

	region = s.regionOrDefault(region)
	limit = clampLimit(limit, defaultSearchLimit)

	key := fmt.Sprintf("%s|%s|%s|%d", region, tier, normalized, limit)
	if cached, ok := s.searchCache.Get(key); ok {
		return cached
	}

	result := s.catalog.Search(normalized, tier, region, limit)
	if result == nil {
		result = []brand.Summary{}
	}

	s.searchCache.Set(key, result, s.cfg.SearchTTL)

	return result
}

func (s *service) Popular(tier brand.Tier, region string, limit int) []brand.Summary {
	region = s.regionOrDefault(region)
	limit = clampLimit(limit, defaultPopularLimit)

	key := fmt.Sprintf("%s|%s|%d", region, tier, limit)
	if cached, ok := s.popularCache.Get(key); ok {
		return cached
	}

	result := s.catalog.Popular(tier, region, limit)
	if result == nil {
		result = []brand.Summary{}
	}

	s.popularCache.Set(key, result, s.cfg.PopularTTL)

	return result
}

// Resolve returns the active catalog brand with the given id. Used by the
// quiz selection flow to re-check references on every save.
func (s *service) Resolve(id string) (*brand.Brand, bool) {
	return s.catalog.Resolve(id)
}

func (s *service) regionOrDefault(region string) string {
	if region == "" {
		return s.cfg.DefaultRegion
	}
	return region
}

func clampLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
