package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/rupai/backend/internal/domain"
)

// GetUser resolves a user by identifier. A NULL monthly_budget stays the
// zero decimal, which User.EffectiveBudget treats as "not configured".
func (s *Store) GetUser(ctx context.Context, id string) (domain.User, error) {
	var (
		u      domain.User
		budget *int64
	)

	err := s.pool.QueryRow(ctx,
		`SELECT id, name, email, monthly_budget FROM users WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.Name, &u.Email, &budget)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("get user %s: %w", id, err)
	}

	if budget != nil {
		u.MonthlyBudget = decimal.NewFromInt(*budget)
	}
	return u, nil
}

// ListUsers returns every known user, for the client's user selector.
func (s *Store) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, name FROM users ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name); err != nil {
			return nil, fmt.Errorf("list users: scan: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// InsertUser is used by the seeder; the advisory pipeline never writes.
func (s *Store) InsertUser(ctx context.Context, u domain.User) error {
	var budget *int64
	if !u.MonthlyBudget.IsZero() {
		v := u.MonthlyBudget.IntPart()
		budget = &v
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO users (id, name, email, monthly_budget) VALUES ($1, $2, $3, $4)`,
		u.ID, u.Name, u.Email, budget,
	)
	if err != nil {
		return fmt.Errorf("insert user %s: %w", u.Name, err)
	}
	return nil
}
