package api

import (
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"airline-ops/seatcrew/internal/common"
	"airline-ops/seatcrew/internal/config"
	"airline-ops/seatcrew/internal/db/repositories"
	"airline-ops/seatcrew/internal/metrics"
	"airline-ops/seatcrew/internal/services"
)

const redisKeyPrefix = "seatcrew:"

type Repositories struct {
	SeatMap   *repositories.SeatMapRepo
	SeatTypes *repositories.SeatTypeRepo
}

type Services struct {
	Cache         common.CacheInterface
	SeatTypes     *services.SeatTypeService
	Seats         *services.SeatAssignmentService
	Crew          *services.CrewService
	Relationships *services.RelationshipService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
}

// InitDependencies wires repositories and services. redisClient may be nil
// unless cfg selects the redis cache backend.
func InitDependencies(cfg *config.Config, orm *gorm.DB, sqlDB *sqlx.DB, redisClient *redis.Client, metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {
	var cache common.CacheInterface
	switch cfg.CacheBackend {
	case config.CacheBackendRedis:
		if redisClient == nil {
			return nil, errors.New("redis cache backend selected but no redis client configured")
		}
		cache = common.NewRedisCacheService(redisClient, redisKeyPrefix)
	default:
		cache = common.NewCacheService(cfg.SeatTypeCacheTTL, 2*cfg.SeatTypeCacheTTL)
	}

	repos := &Repositories{
		SeatMap:   repositories.NewSeatMapRepo(sqlDB),
		SeatTypes: repositories.NewSeatTypeRepo(orm),
	}

	seatTypes := services.NewSeatTypeService(repos.SeatTypes, cache, cfg.SeatTypeCacheTTL, metricsReg)

	svcs := &Services{
		Cache:         cache,
		SeatTypes:     seatTypes,
		Seats:         services.NewSeatAssignmentService(orm, seatTypes, repos.SeatMap, metricsReg),
		Crew:          services.NewCrewService(orm, metricsReg),
		Relationships: services.NewRelationshipService(orm),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Metrics:  metricsReg,
	}, nil
}
