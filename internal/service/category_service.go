package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"trivia-api/internal/cache"
	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// DefaultCategoryCacheTTL applies when no TTL is configured.
const DefaultCategoryCacheTTL = 10 * time.Minute

// CategoryService serves the category map, reading through the cache when
// one is configured.
type CategoryService interface {
	GetCategories(ctx context.Context) (*dto.CategoriesResponse, error)
	CategoryMap(ctx context.Context) (dto.CategoryMap, error)
	InvalidateCategoryCache(ctx context.Context) error
}

type categoryService struct {
	repo     domain.CategoryRepository
	cache    domain.Cache // nil disables caching
	cacheTTL time.Duration
	sfGroup  singleflight.Group
}

// NewCategoryService creates a CategoryService. cache may be nil.
func NewCategoryService(repo domain.CategoryRepository, cache domain.Cache, cacheTTL time.Duration) CategoryService {
	return &categoryService{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// GetCategories treats an empty category store as not found.
func (s *categoryService) GetCategories(ctx context.Context) (*dto.CategoriesResponse, error) {
	categories, err := s.CategoryMap(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, domain.NewNotFoundError("no categories found")
	}
	return &dto.CategoriesResponse{Success: true, Categories: categories}, nil
}

// CategoryMap returns id -> type for every category. The returned map is
// shared and must not be modified.
func (s *categoryService) CategoryMap(ctx context.Context) (dto.CategoryMap, error) {
	key := cache.CategoryMapKey()

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		switch {
		case err == nil:
			var categories dto.CategoryMap
			errUnmarshal := json.Unmarshal([]byte(cached), &categories)
			if errUnmarshal == nil {
				return categories, nil
			}
			logger.Get().Warn("Discarding undecodable category cache entry", zap.String("key", key), zap.Error(errUnmarshal))
		case errors.Is(err, domain.ErrCacheMiss):
			logger.Get().Debug("Category cache miss", zap.String("key", key))
		default:
			logger.Get().Warn("Category cache read failed, reading from store", zap.String("key", key), zap.Error(err))
		}
	}

	res, err, _ := s.sfGroup.Do(key, func() (interface{}, error) {
		return s.loadCategoryMap(ctx, key)
	})
	if err != nil {
		return nil, err
	}
	categories, ok := res.(dto.CategoryMap)
	if !ok {
		return nil, domain.NewInternalError("failed to load categories", fmt.Errorf("unexpected type %T from singleflight", res))
	}
	return categories, nil
}

func (s *categoryService) loadCategoryMap(ctx context.Context, key string) (dto.CategoryMap, error) {
	categories, err := s.repo.GetAllCategories(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to load categories", err)
	}

	categoryMap := make(dto.CategoryMap, len(categories))
	for _, c := range categories {
		categoryMap[c.ID] = c.Type
	}

	// An empty map is not cached so freshly seeded categories show up at once.
	if s.cache != nil && len(categoryMap) > 0 {
		encoded, errMarshal := json.Marshal(categoryMap)
		if errMarshal != nil {
			logger.Get().Error("Failed to encode category map for cache", zap.Error(errMarshal))
		} else if errSet := s.cache.Set(ctx, key, string(encoded), s.cacheTTL); errSet != nil {
			logger.Get().Warn("Failed to cache category map", zap.String("key", key), zap.Error(errSet))
		}
	}
	return categoryMap, nil
}

// InvalidateCategoryCache drops the cached map. It is a no-op without a cache.
func (s *categoryService) InvalidateCategoryCache(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, cache.CategoryMapKey())
}
