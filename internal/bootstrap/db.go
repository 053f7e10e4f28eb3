package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/GoSim-25-26J-441/siteproof-backend/config"
	"github.com/GoSim-25-26J-441/siteproof-backend/internal/storage/postgres"
)

// OpenDB connects with the configured driver and returns the handle with its
// closer. DB_DRIVER=pgx goes through a pgxpool; postgres uses lib/pq.
func OpenDB(ctx context.Context, cfg *config.DatabaseConfig) (*sql.DB, func(), error) {
	switch cfg.Driver {
	case config.DriverPgx:
		pool, err := postgres.OpenPool(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return pool.DB, pool.Close, nil
	case config.DriverPostgres:
		db, err := postgres.NewConnection(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return db, func() { db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}
}
