// Package advisor implements the advisory request pipeline: derive the
// user's month-to-date budget status from raw transactions, classify it
// into a spending zone, render the grounding prompt, and obtain a single
// completion from the model.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/rupai/backend/internal/domain"
)

// Service runs the pipeline for one chat turn. It holds no per-request
// state, so concurrent requests need no coordination. The stores and the
// model client are injected so tests can substitute fakes.
type Service struct {
	users UserStore
	txs   TransactionStore
	model Completer
	now   func() time.Time
	log   zerolog.Logger
}

// New creates the advisory service. The wall clock is time.Now unless
// overridden with WithClock.
func New(users UserStore, txs TransactionStore, model Completer, log zerolog.Logger) *Service {
	return &Service{
		users: users,
		txs:   txs,
		model: model,
		now:   time.Now,
		log:   log,
	}
}

// WithClock fixes the time source. Tests use this to pin the month window.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Advise answers one chat message grounded in the user's current month of
// spending. Stages run strictly in order; each stage's output feeds the
// next. Errors are one of ErrInvalidRequest, domain.ErrUserNotFound,
// ErrStoreUnavailable, or ErrModelFailure.
func (s *Service) Advise(ctx context.Context, userID, message string) (string, error) {
	if strings.TrimSpace(message) == "" || strings.TrimSpace(userID) == "" {
		return "", ErrInvalidRequest
	}

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", err
		}
		return "", fmt.Errorf("%w: resolving user: %v", ErrStoreUnavailable, err)
	}

	from, to := MonthWindow(s.now())
	txs, err := s.txs.ListDebits(ctx, user.ID, from, to)
	if err != nil {
		return "", fmt.Errorf("%w: listing debits: %v", ErrStoreUnavailable, err)
	}

	spent, summary := Summarize(txs)
	status := domain.NewBudgetStatus(spent, user.EffectiveBudget())

	grounding := BuildPrompt(user.Name, summary, status)

	reply, err := s.model.Complete(ctx, grounding, message)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrModelFailure, err)
	}

	s.log.Info().
		Str("user_id", user.ID).
		Str("zone", string(status.Zone)).
		Str("spent", status.Spent.String()).
		Int("categories", len(summary)).
		Msg("Advisory completed")

	return reply, nil
}
