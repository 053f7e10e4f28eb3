package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/GoSim-25-26J-441/siteproof-backend/config"
)

// Pool is a pgx connection pool exposed through database/sql so repositories
// stay driver-agnostic.
type Pool struct {
	pool *pgxpool.Pool
	DB   *sql.DB
}

func OpenPool(ctx context.Context, cfg *config.DatabaseConfig) (*Pool, error) {
	pcfg, err := pgxpool.ParseConfig(DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pcfg.MaxConns = int32(cfg.MaxConns)
	pcfg.MinConns = int32(cfg.MinConns)
	pcfg.MaxConnIdleTime = 5 * time.Minute
	pcfg.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", err)
	}

	// Fail fast
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	return &Pool{pool: pool, DB: stdlib.OpenDBFromPool(pool)}, nil
}

func (p *Pool) Close() {
	if p == nil {
		return
	}
	if p.DB != nil {
		p.DB.Close()
	}
	if p.pool != nil {
		p.pool.Close()
	}
}
