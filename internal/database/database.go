// Package database opens the Postgres pool behind the postgres row store and
// applies its embedded migrations.
package database

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/AlterEgo_Go/internal/logger"
)

// PoolSettings sizes the connection pool
type PoolSettings struct {
	ConnString string
	MaxConns   int
	MaxIdle    time.Duration
	MaxLife    time.Duration
}

// NewPool connects and pings before returning; a pool that cannot reach the
// server is closed again.
func NewPool(ctx context.Context, s PoolSettings) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(s.ConnString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	if s.MaxConns > 0 {
		cfg.MaxConns = int32(min(s.MaxConns, math.MaxInt32))
	}
	cfg.MinConns = min(DefaultMinConnections, cfg.MaxConns)
	if s.MaxLife > 0 {
		cfg.MaxConnLifetime = s.MaxLife
	}
	if s.MaxIdle > 0 {
		cfg.MaxConnIdleTime = s.MaxIdle
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	logger.FromContext(ctx).Info(LogMsgSuccessfullyConnectedToDatabase,
		"host", cfg.ConnConfig.Host,
		"database", cfg.ConnConfig.Database,
		"max_conns", cfg.MaxConns)
	return pool, nil
}
