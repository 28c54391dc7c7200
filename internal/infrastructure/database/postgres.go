package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"address-backend/internal/config"
)

const (
	maxRetries     = 5
	retryBaseDelay = time.Second
	connectTimeout = 10 * time.Second
)

// PostgresDB wraps the pgx connection pool so callers share a single pool
// for the process lifetime.
type PostgresDB struct {
	Pool *pgxpool.Pool
}

// Connect builds the pool from config and establishes it with retries and
// exponential backoff, so a database that is still coming up does not kill
// the service at boot.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*PostgresDB, error) {
	connString := fmt.Sprintf(
		"postgresql://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database, cfg.SSLMode,
	)

	poolCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	poolCfg.MaxConns = int32(cfg.MaxConns)
	poolCfg.MinConns = int32(cfg.MinConns)
	poolCfg.MaxConnLifetime = 5 * time.Minute
	poolCfg.MaxConnIdleTime = time.Minute
	poolCfg.HealthCheckPeriod = time.Minute
	poolCfg.ConnConfig.ConnectTimeout = connectTimeout

	pool, err := connectWithRetry(ctx, poolCfg)
	if err != nil {
		return nil, err
	}

	return &PostgresDB{Pool: pool}, nil
}

func connectWithRetry(ctx context.Context, cfg *pgxpool.Config) (*pgxpool.Pool, error) {
	var lastErr error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
		pool, err := pgxpool.NewWithConfig(connectCtx, cfg)
		cancel()

		if err == nil {
			if pingErr := pool.Ping(ctx); pingErr == nil {
				log.Info().Int("attempt", attempt).Msg("database connected")
				return pool, nil
			} else {
				pool.Close()
				err = pingErr
			}
		}
		lastErr = err
		log.Warn().Err(err).Int("attempt", attempt).Msg("database connection failed")

		if attempt < maxRetries {
			delay := retryBaseDelay * time.Duration(1<<uint(attempt-1))
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	return nil, fmt.Errorf("database unreachable after %d attempts: %w", maxRetries, lastErr)
}

func (db *PostgresDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return db.Pool.Ping(ctx)
}

func (db *PostgresDB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}
