package advisor_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/rupai/backend/internal/advisor"
	"github.com/rupai/backend/internal/domain"
)

// fakeUserStore is a fake implementation of UserStore for testing.
type fakeUserStore struct {
	GetUserFunc func(ctx context.Context, id string) (domain.User, error)
}

func (f *fakeUserStore) GetUser(ctx context.Context, id string) (domain.User, error) {
	if f.GetUserFunc != nil {
		return f.GetUserFunc(ctx, id)
	}
	return domain.User{ID: id, Name: "Rohan", MonthlyBudget: decimal.NewFromInt(40000)}, nil
}

// fakeTransactionStore is a fake implementation of TransactionStore.
type fakeTransactionStore struct {
	ListDebitsFunc func(ctx context.Context, userID string, from, to time.Time) ([]domain.Transaction, error)
}

func (f *fakeTransactionStore) ListDebits(ctx context.Context, userID string, from, to time.Time) ([]domain.Transaction, error) {
	if f.ListDebitsFunc != nil {
		return f.ListDebitsFunc(ctx, userID, from, to)
	}
	return nil, nil
}

// fakeCompleter is a fake implementation of Completer.
type fakeCompleter struct {
	CompleteFunc func(ctx context.Context, grounding, message string) (string, error)
}

func (f *fakeCompleter) Complete(ctx context.Context, grounding, message string) (string, error) {
	if f.CompleteFunc != nil {
		return f.CompleteFunc(ctx, grounding, message)
	}
	return "Here is some advice.", nil
}

func fixedClock() time.Time {
	return time.Date(2026, time.September, 15, 10, 0, 0, 0, time.UTC)
}

func monthDebits() []domain.Transaction {
	mk := func(amount int64, cat domain.Category, day int) domain.Transaction {
		return domain.Transaction{
			ID:        "t",
			UserID:    "u1",
			Amount:    decimal.NewFromInt(amount),
			Direction: domain.Debit,
			Category:  cat,
			Date:      time.Date(2026, time.September, day, 12, 0, 0, 0, time.UTC),
		}
	}
	return []domain.Transaction{
		mk(20000, domain.Food, 3),
		mk(15000, domain.Shopping, 8),
		mk(10000, domain.Transport, 12),
	}
}

func TestAdvise(t *testing.T) {
	var gotGrounding, gotMessage string

	users := &fakeUserStore{}
	txs := &fakeTransactionStore{
		ListDebitsFunc: func(ctx context.Context, userID string, from, to time.Time) ([]domain.Transaction, error) {
			wantFrom := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
			wantTo := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)
			if !from.Equal(wantFrom) || !to.Equal(wantTo) {
				t.Errorf("window = [%v, %v), want [%v, %v)", from, to, wantFrom, wantTo)
			}
			return monthDebits(), nil
		},
	}
	model := &fakeCompleter{
		CompleteFunc: func(ctx context.Context, grounding, message string) (string, error) {
			gotGrounding = grounding
			gotMessage = message
			return "We need to talk about your spending.", nil
		},
	}

	svc := advisor.New(users, txs, model, zerolog.Nop()).WithClock(fixedClock)

	reply, err := svc.Advise(context.Background(), "u1", "How am I doing this month?")
	if err != nil {
		t.Fatalf("Advise returned error: %v", err)
	}
	if reply != "We need to talk about your spending." {
		t.Errorf("reply = %q, want the model text verbatim", reply)
	}
	if gotMessage != "How am I doing this month?" {
		t.Errorf("model received message %q", gotMessage)
	}

	// 45,000 spent against a 40,000 budget: the grounding must carry the
	// Red zone, both formatted figures, and every category total.
	for _, want := range []string{"Red", "₹45,000", "₹40,000", `"Food": 20000`, `"Shopping": 15000`, `"Transport": 10000`} {
		if !strings.Contains(gotGrounding, want) {
			t.Errorf("grounding missing %q", want)
		}
	}
}

func TestAdviseValidation(t *testing.T) {
	svc := advisor.New(&fakeUserStore{}, &fakeTransactionStore{}, &fakeCompleter{}, zerolog.Nop())

	tests := []struct {
		name    string
		userID  string
		message string
	}{
		{name: "missing message", userID: "u1", message: ""},
		{name: "missing userId", userID: "", message: "hi"},
		{name: "whitespace message", userID: "u1", message: "   "},
		{name: "both missing", userID: "", message: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Advise(context.Background(), tt.userID, tt.message)
			if !errors.Is(err, advisor.ErrInvalidRequest) {
				t.Errorf("error = %v, want ErrInvalidRequest", err)
			}
		})
	}
}

func TestAdviseUserNotFound(t *testing.T) {
	users := &fakeUserStore{
		GetUserFunc: func(ctx context.Context, id string) (domain.User, error) {
			return domain.User{}, domain.ErrUserNotFound
		},
	}

	svc := advisor.New(users, &fakeTransactionStore{}, &fakeCompleter{}, zerolog.Nop())

	_, err := svc.Advise(context.Background(), "missing", "hi")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("error = %v, want ErrUserNotFound", err)
	}
}

func TestAdviseStoreFailure(t *testing.T) {
	txs := &fakeTransactionStore{
		ListDebitsFunc: func(ctx context.Context, userID string, from, to time.Time) ([]domain.Transaction, error) {
			return nil, errors.New("connection refused")
		},
	}

	svc := advisor.New(&fakeUserStore{}, txs, &fakeCompleter{}, zerolog.Nop())

	_, err := svc.Advise(context.Background(), "u1", "hi")
	if !errors.Is(err, advisor.ErrStoreUnavailable) {
		t.Errorf("error = %v, want ErrStoreUnavailable", err)
	}
}

func TestAdviseModelFailure(t *testing.T) {
	model := &fakeCompleter{
		CompleteFunc: func(ctx context.Context, grounding, message string) (string, error) {
			return "", errors.New("deadline exceeded")
		},
	}

	svc := advisor.New(&fakeUserStore{}, &fakeTransactionStore{}, model, zerolog.Nop())

	_, err := svc.Advise(context.Background(), "u1", "hi")
	if !errors.Is(err, advisor.ErrModelFailure) {
		t.Errorf("error = %v, want ErrModelFailure", err)
	}
}

// A user with no configured budget is advised against the 40,000 default.
func TestAdviseDefaultBudget(t *testing.T) {
	var gotGrounding string

	users := &fakeUserStore{
		GetUserFunc: func(ctx context.Context, id string) (domain.User, error) {
			return domain.User{ID: id, Name: "Priya"}, nil
		},
	}
	txs := &fakeTransactionStore{
		ListDebitsFunc: func(ctx context.Context, userID string, from, to time.Time) ([]domain.Transaction, error) {
			return []domain.Transaction{{
				Amount:    decimal.NewFromInt(35000),
				Direction: domain.Debit,
				Category:  domain.Shopping,
				Date:      time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC),
			}}, nil
		},
	}
	model := &fakeCompleter{
		CompleteFunc: func(ctx context.Context, grounding, message string) (string, error) {
			gotGrounding = grounding
			return "Careful now.", nil
		},
	}

	svc := advisor.New(users, txs, model, zerolog.Nop()).WithClock(fixedClock)

	if _, err := svc.Advise(context.Background(), "u2", "status?"); err != nil {
		t.Fatalf("Advise returned error: %v", err)
	}

	for _, want := range []string{"Yellow", "₹40,000", "₹35,000"} {
		if !strings.Contains(gotGrounding, want) {
			t.Errorf("grounding missing %q", want)
		}
	}
}
