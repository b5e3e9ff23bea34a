package postgres

import (
	"context"
	"fmt"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/ecomicro/pkg/config"
)

// NewPool crea un pool de conexiones PostgreSQL usando la configuración del servicio.
// Usa DATABASE_URL si está definido; si no, el DSN construido desde DB_HOST, DB_PORT, etc.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	poolConfig.MaxConns = 25
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	// Registrar codec para NUMERIC -> shopspring/decimal (todas las conexiones del pool).
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

// Open crea el pool y, si cfg.Migrate, asegura la tabla del servicio (y siembra si cfg.Seed).
// Devuelve si se insertaron las filas de ejemplo.
func Open(ctx context.Context, cfg config.DBConfig, s Schema) (*pgxpool.Pool, bool, error) {
	pool, err := NewPool(ctx, cfg)
	if err != nil {
		return nil, false, err
	}
	if !cfg.Migrate {
		return pool, false, nil
	}
	seeded, err := Bootstrap(ctx, NewTxRunner(pool), s, cfg.Seed)
	if err != nil {
		pool.Close()
		return nil, false, err
	}
	return pool, seeded, nil
}
