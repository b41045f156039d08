package inventory

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"honorsinventory/internal/cache"
	"honorsinventory/internal/domain"
)

const locationsCacheKey = "inventory:locations"

// LocationService serves the read-only room list, optionally through a cache.
// Cache failures are logged and the database is used instead.
type LocationService struct {
	repo  LocationRepository
	cache cache.Cache
	ttl   time.Duration
	log   *zap.Logger
}

func NewLocationService(repo LocationRepository, c cache.Cache, ttl time.Duration, log *zap.Logger) *LocationService {
	if c == nil {
		c = cache.Noop{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &LocationService{repo: repo, cache: c, ttl: ttl, log: log}
}

// List returns all locations ordered by building type then room name.
func (s *LocationService) List(ctx context.Context) ([]domain.Location, error) {
	var cached []domain.Location
	found, err := cache.GetJSON(ctx, s.cache, locationsCacheKey, &cached)
	if err != nil {
		s.log.Warn("location cache read failed", zap.Error(err))
	}
	if found {
		return cached, nil
	}

	locations, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}

	if err := cache.SetJSON(ctx, s.cache, locationsCacheKey, locations, s.ttl); err != nil {
		s.log.Warn("location cache write failed", zap.Error(err))
	}
	return locations, nil
}

// Invalidate drops the cached list, e.g. after reseeding.
func (s *LocationService) Invalidate(ctx context.Context) {
	if err := s.cache.Del(ctx, locationsCacheKey); err != nil {
		s.log.Warn("location cache invalidate failed", zap.Error(err))
	}
}
