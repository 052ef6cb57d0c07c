package advisor

import (
	"context"
	"time"

	"github.com/rupai/backend/internal/domain"
)

// UserStore resolves users by identifier.
type UserStore interface {
	// GetUser returns domain.ErrUserNotFound when the id is unknown.
	GetUser(ctx context.Context, id string) (domain.User, error)
}

// TransactionStore lists a user's debit transactions with date in the
// half-open window [from, to).
type TransactionStore interface {
	ListDebits(ctx context.Context, userID string, from, to time.Time) ([]domain.Transaction, error)
}

// Completer produces a single text completion from a grounding context and
// one user turn. Implementations enable mocking the external model in
// tests.
type Completer interface {
	Complete(ctx context.Context, grounding, message string) (string, error)
}
