package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/AlterEgo_Go/internal/config"
	"github.com/osse101/AlterEgo_Go/internal/database"
	"github.com/osse101/AlterEgo_Go/internal/database/bolt"
	"github.com/osse101/AlterEgo_Go/internal/database/postgres"
	"github.com/osse101/AlterEgo_Go/internal/repository"
)

// OpenRowStore opens the configured row store. The pgx pool is returned for
// readiness checks and is nil for the other stores.
func OpenRowStore(ctx context.Context, cfg *config.Config) (repository.RowStore, *pgxpool.Pool, error) {
	switch cfg.RowStore {
	case config.RowStorePostgres:
		pool, err := database.NewPool(ctx, database.PoolSettings{
			ConnString: cfg.GetDBConnString(),
			MaxConns:   cfg.DBMaxConns,
			MaxIdle:    cfg.DBMaxConnIdle,
			MaxLife:    cfg.DBMaxConnLife,
		})
		if err != nil {
			return nil, nil, fmt.Errorf(ErrFmtConnectDB, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf(ErrFmtMigrate, err)
		}
		slog.Info(LogMsgRowStoreOpened, "store", cfg.RowStore, "host", cfg.DBHost, "db", cfg.DBName)
		return postgres.NewRowRepository(pool, cfg.RowOffset), pool, nil

	case config.RowStoreBolt:
		if err := os.MkdirAll(filepath.Dir(cfg.BoltPath), DirPermission); err != nil {
			return nil, nil, fmt.Errorf(ErrFmtOpenBolt, err)
		}
		store, err := bolt.Open(cfg.BoltPath, cfg.RowOffset)
		if err != nil {
			return nil, nil, fmt.Errorf(ErrFmtOpenBolt, err)
		}
		slog.Info(LogMsgRowStoreOpened, "store", cfg.RowStore, "path", cfg.BoltPath)
		return store, nil, nil

	case config.RowStoreMemory:
		slog.Info(LogMsgRowStoreOpened, "store", cfg.RowStore)
		return repository.NewMemoryRowStore(cfg.RowOffset), nil, nil
	}
	return nil, nil, fmt.Errorf(ErrFmtUnknownStore, cfg.RowStore)
}
