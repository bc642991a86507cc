package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"mood-analyzer/internal/config"
)

// NewPool construye y devuelve un pool de conexiones configurado.
func NewPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	// Solo se leen preguntas: pool chico.
	poolCfg.MaxConns = 4
	poolCfg.MinConns = 0
	poolCfg.MaxConnLifetime = 30 * time.Minute
	poolCfg.MaxConnIdleTime = 5 * time.Minute
	poolCfg.HealthCheckPeriod = 30 * time.Second
	poolCfg.ConnConfig.ConnectTimeout = 5 * time.Second

	return pgxpool.NewWithConfig(ctx, poolCfg)
}

// Ping verifica conectividad con la base de datos.
func Ping(ctx context.Context, pool *pgxpool.Pool) error {
	return pool.Ping(ctx)
}

const questionsSchema = `
	CREATE TABLE IF NOT EXISTS questions (
		id       SERIAL PRIMARY KEY,
		text     TEXT NOT NULL,
		position INTEGER NOT NULL DEFAULT 0,
		active   BOOLEAN NOT NULL DEFAULT TRUE
	)
`

// EnsureSchema crea la tabla del catálogo de preguntas si no existe.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, questionsSchema)
	return err
}
