package container

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"address-backend/internal/authz"
	"address-backend/internal/config"
	infracache "address-backend/internal/infrastructure/cache"
	"address-backend/internal/infrastructure/database"
	"address-backend/pkg/cache"

	addr "address-backend/internal/domains/address"
	addrHandler "address-backend/internal/domains/address/handler"
	addrRepo "address-backend/internal/domains/address/repository"
	addrService "address-backend/internal/domains/address/service"
)

// Container is the root of the dependency graph, built once at startup.
// Initialization order matters: config, then infrastructure, then
// repository, service and handler layers.
type Container struct {
	Config       *config.Config
	DB           *database.PostgresDB
	Limiter      cache.Counter
	AccessClient authz.AccessChecker

	AddressRepo    addr.Repository
	AddressService addr.Service
	AddressHandler *addrHandler.AddressHandler

	redis *infracache.RedisCounter
}

func NewContainer(ctx context.Context) (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	c.redis = infracache.NewRedisCounter(cfg.Redis)
	if err := c.redis.Ping(ctx); err != nil {
		// The limiter fails open, so a missing Redis is a warning at
		// boot, not a fatal error.
		log.Warn().Err(err).Msg("redis unreachable, rate limiting degraded")
	}
	c.Limiter = c.redis

	c.AccessClient = authz.NewClient(cfg.CheckAccess)

	c.AddressRepo = addrRepo.NewPostgresRepository(db.Pool)
	c.AddressService = addrService.NewAddressService(c.AddressRepo)
	c.AddressHandler = addrHandler.NewAddressHandler(c.AddressService, cfg.AddressesPerPage)

	return c, nil
}

func (c *Container) Cleanup() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			log.Warn().Err(err).Msg("redis close failed")
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
