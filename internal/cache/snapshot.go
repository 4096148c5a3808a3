package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/threadly-market/marketplace-backend/internal/models"
	repository "github.com/threadly-market/marketplace-backend/internal/repositories"
)

const snapshotKey = CategoryKeyPrefix + ":active"

// CategorySnapshot serves the per-request category list, fronted by a
// time-boxed cache entry. The cache is best-effort: any cache failure falls
// through to the database so a degraded Redis never breaks browsing.
type CategorySnapshot struct {
	cache      Cache
	categories repository.CategoryRepository
	ttl        time.Duration
}

func NewCategorySnapshot(cache Cache, categories repository.CategoryRepository, ttl time.Duration) *CategorySnapshot {
	return &CategorySnapshot{
		cache:      cache,
		categories: categories,
		ttl:        ttl,
	}
}

func (s *CategorySnapshot) Load(ctx context.Context) ([]models.CategoryNode, error) {
	var cached []models.CategoryNode

	if s.cache != nil {
		found, err := s.cache.Get(ctx, snapshotKey, &cached)
		if err != nil {
			slog.Warn("category snapshot cache read failed", slog.String("error", err.Error()))
		} else if found {
			return cached, nil
		}
	}

	nodes, err := s.categories.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, snapshotKey, nodes, s.ttl); err != nil {
			slog.Warn("category snapshot cache write failed", slog.String("error", err.Error()))
		}
	}

	return nodes, nil
}

// Invalidate drops the cached snapshot, forcing the next Load to hit the
// database.
func (s *CategorySnapshot) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}

	return s.cache.Delete(ctx, snapshotKey)
}
