package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/rupai/backend/internal/domain"
)

// ListDebits returns the user's debit transactions with date in [from, to),
// oldest first. Category text is parsed through the closed enum; an
// unknown value is surfaced as an error rather than bucketed as Other.
func (s *Store) ListDebits(ctx context.Context, userID string, from, to time.Time) ([]domain.Transaction, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, amount, direction, category, merchant, date
		   FROM transactions
		  WHERE user_id = $1 AND direction = $2 AND date >= $3 AND date < $4
		  ORDER BY date`,
		userID, string(domain.Debit), from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("list debits for %s: %w", userID, err)
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var (
			t                   domain.Transaction
			amount              int64
			direction, category string
		)
		if err := rows.Scan(&t.ID, &t.UserID, &amount, &direction, &category, &t.Merchant, &t.Date); err != nil {
			return nil, fmt.Errorf("list debits: scan: %w", err)
		}

		t.Amount = decimal.NewFromInt(amount)

		t.Direction, err = domain.ParseDirection(direction)
		if err != nil {
			return nil, fmt.Errorf("list debits: transaction %s: %w", t.ID, err)
		}
		t.Category, err = domain.ParseCategory(category)
		if err != nil {
			return nil, fmt.Errorf("list debits: transaction %s: %w", t.ID, err)
		}

		txs = append(txs, t)
	}
	return txs, rows.Err()
}

// CountTransactions reports how many transactions exist. The seeder uses
// it to skip reseeding a populated database.
func (s *Store) CountTransactions(ctx context.Context) (int64, error) {
	var count int64
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return count, nil
}

// CopyTransactions bulk-inserts transactions with CopyFrom. Seeder only.
func (s *Store) CopyTransactions(ctx context.Context, txs []domain.Transaction) (int64, error) {
	rows := make([][]interface{}, 0, len(txs))
	for _, t := range txs {
		rows = append(rows, []interface{}{
			t.ID, t.UserID, t.Amount.IntPart(), string(t.Direction), string(t.Category), t.Merchant, t.Date,
		})
	}

	copied, err := s.pool.CopyFrom(
		ctx,
		pgx.Identifier{"transactions"},
		[]string{"id", "user_id", "amount", "direction", "category", "merchant", "date"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, fmt.Errorf("copy transactions: %w", err)
	}
	return copied, nil
}
