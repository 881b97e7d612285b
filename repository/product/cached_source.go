package product

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ecomstore/catalog/model"
	redisrepo "github.com/ecomstore/catalog/repository/redis"
	"github.com/ecomstore/catalog/utils/logger"
	"go.uber.org/zap"
)

const catalogSnapshotKey = "catalog:snapshot"

// cachedSource decorates a CatalogSource with a redis snapshot cache
// (cache-aside: read through on miss, best-effort write back).
type cachedSource struct {
	inner     CatalogSource
	redisRepo redisrepo.Repository
	ttl       time.Duration
}

func NewCachedSource(inner CatalogSource, redisRepo redisrepo.Repository, ttl time.Duration) CatalogSource {
	return &cachedSource{
		inner:     inner,
		redisRepo: redisRepo,
		ttl:       ttl,
	}
}

func (s *cachedSource) FetchAll(ctx context.Context) ([]model.Product, error) {
	if raw, err := s.redisRepo.Get(ctx, catalogSnapshotKey); err == nil && raw != "" {
		var products []model.Product
		if err := json.Unmarshal([]byte(raw), &products); err == nil {
			return products, nil
		}
		// a corrupt snapshot falls through to the inner source
		logger.Warn("[FetchAll] corrupt catalog snapshot, refetching")
	}

	products, err := s.inner.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(products); err == nil {
		if err := s.redisRepo.SetWithTTL(ctx, catalogSnapshotKey, string(raw), s.ttl); err != nil {
			logger.Warn("[FetchAll] err caching catalog snapshot", zap.String("error", err.Error()))
		}
	}

	return products, nil
}

// Invalidate drops the cached snapshot so the next fetch hits the inner source.
func (s *cachedSource) Invalidate(ctx context.Context) error {
	return s.redisRepo.Delete(ctx, catalogSnapshotKey)
}
