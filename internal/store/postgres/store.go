// Package postgres implements the advisor's store interfaces on a
// pgx connection pool.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store holds the shared connection pool. All advisory-pipeline methods
// are read-only; the write methods exist for the seeder.
type Store struct {
	pool *pgxpool.Pool
}

// New connects and pings the database.
func New(ctx context.Context, connString string) (*Store, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close releases the pool.
func (s *Store) Close() {
	s.pool.Close()
}

// Migrate creates the schema when it does not exist yet. Amounts are whole
// rupees stored as BIGINT.
func (s *Store) Migrate(ctx context.Context) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT UNIQUE NOT NULL,
			monthly_budget BIGINT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS transactions (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			amount BIGINT NOT NULL,
			direction TEXT NOT NULL,
			category TEXT NOT NULL,
			merchant TEXT NOT NULL DEFAULT 'N/A',
			date TIMESTAMPTZ NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_transactions_user_direction_date
			ON transactions (user_id, direction, date)`,
	}

	for _, migration := range migrations {
		if _, err := s.pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
