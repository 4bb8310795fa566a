package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"airline-ops/seatcrew/internal/common"
	"airline-ops/seatcrew/internal/constants"
	"airline-ops/seatcrew/internal/db/repositories"
	"airline-ops/seatcrew/internal/logging"
	"airline-ops/seatcrew/internal/metrics"
	"airline-ops/seatcrew/internal/seating"
)

// ClassSource resolves seat type ids to class names
type ClassSource interface {
	Resolver(ctx context.Context) (seating.ClassResolver, error)
}

// SeatTypeService serves the seat_type reference table from cache.
// Only this lookup is cached; occupancy and plans are always read fresh.
type SeatTypeService struct {
	repo    *repositories.SeatTypeRepo
	cache   common.CacheInterface
	ttl     time.Duration
	metrics *metrics.MetricsRegistry
	group   singleflight.Group
}

func NewSeatTypeService(repo *repositories.SeatTypeRepo, cache common.CacheInterface, ttl time.Duration, metricsReg *metrics.MetricsRegistry) *SeatTypeService {
	return &SeatTypeService{
		repo:    repo,
		cache:   cache,
		ttl:     ttl,
		metrics: metricsReg,
	}
}

// Classes returns seat type id -> class name
func (s *SeatTypeService) Classes(ctx context.Context) (map[int64]string, error) {
	key := string(constants.CachePrefixSeatTypes)

	if val, found := s.cache.Get(key); found {
		if classes, ok := val.(map[int64]string); ok {
			s.countHit()
			return classes, nil
		}
		var classes map[int64]string
		if err := common.DecodeCached(val, &classes); err == nil {
			s.countHit()
			return classes, nil
		}
		logging.Warn("Discarding undecodable seat type cache entry", "key", key)
		s.cache.Delete(key)
	}
	s.countMiss()

	return s.load(ctx)
}

// Refresh reloads the table into the cache without evicting the current entry first
func (s *SeatTypeService) Refresh(ctx context.Context) error {
	_, err := s.load(ctx)
	return err
}

func (s *SeatTypeService) load(ctx context.Context) (map[int64]string, error) {
	key := string(constants.CachePrefixSeatTypes)

	// concurrent misses share one query, so one caller going away must not fail the rest
	shared := context.WithoutCancel(ctx)
	val, err, _ := s.group.Do(key, func() (interface{}, error) {
		types, err := s.repo.List(shared)
		if err != nil {
			return nil, err
		}
		classes := make(map[int64]string, len(types))
		for _, t := range types {
			classes[t.ID] = t.Name
		}
		s.cache.Set(key, classes, s.ttl)
		return classes, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load seat types: %w", err)
	}

	return val.(map[int64]string), nil
}

func (s *SeatTypeService) Resolver(ctx context.Context) (seating.ClassResolver, error) {
	classes, err := s.Classes(ctx)
	if err != nil {
		return nil, err
	}
	return seating.ClassMap(classes), nil
}

// Invalidate drops the cached table, e.g. after reference data was edited
func (s *SeatTypeService) Invalidate() {
	s.cache.Delete(string(constants.CachePrefixSeatTypes))
}

func (s *SeatTypeService) countHit() {
	if s.metrics != nil {
		s.metrics.CacheHitsTotal.WithLabelValues(string(constants.CachePrefixSeatTypes)).Inc()
	}
}

func (s *SeatTypeService) countMiss() {
	if s.metrics != nil {
		s.metrics.CacheMissesTotal.WithLabelValues(string(constants.CachePrefixSeatTypes)).Inc()
	}
}
