package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresKV keeps the planner records in a single key-value table.
type PostgresKV struct {
	pool *pgxpool.Pool
}

// NewPostgresKV connects to the database and verifies the connection.
func NewPostgresKV(databaseURL string) (*PostgresKV, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	config.MaxConns = 4
	config.MinConns = 1

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &PostgresKV{pool: pool}, nil
}

// Migrate creates the record table if it does not exist.
func (s *PostgresKV) Migrate(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS planner_kv (
		k          TEXT PRIMARY KEY,
		v          JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	`
	_, err := s.pool.Exec(ctx, query)
	return err
}

func (s *PostgresKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.pool.QueryRow(ctx, "SELECT v FROM planner_kv WHERE k = $1", key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (s *PostgresKV) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.pool.Exec(ctx,
		"INSERT INTO planner_kv (k, v) VALUES ($1, $2) ON CONFLICT (k) DO UPDATE SET v = EXCLUDED.v, updated_at = NOW()",
		key, value)
	return err
}

func (s *PostgresKV) Delete(ctx context.Context, key string) error {
	_, err := s.pool.Exec(ctx, "DELETE FROM planner_kv WHERE k = $1", key)
	return err
}

func (s *PostgresKV) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PostgresKV) Close() error {
	s.pool.Close()
	return nil
}
