package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ErrUserNotFound is returned when a user identifier does not resolve to a
// known user.
var ErrUserNotFound = errors.New("user not found")

// ErrUnknownCategory is returned when stored category text is not part of
// the closed category set. Unknown text is never silently bucketed as Other.
var ErrUnknownCategory = errors.New("unknown transaction category")

// Direction tells whether money entered (credit) or left (debit) the
// user's account.
type Direction string

const (
	Credit Direction = "credit"
	Debit  Direction = "debit"
)

// Category is the closed set of spending categories. Upstream ingestion
// guarantees one of these values per transaction.
type Category string

const (
	Food          Category = "Food"
	Shopping      Category = "Shopping"
	Transport     Category = "Transport"
	Bills         Category = "Bills"
	Entertainment Category = "Entertainment"
	Salary        Category = "Salary"
	Other         Category = "Other"
)

// Categories returns every valid category in declaration order.
func Categories() []Category {
	return []Category{Food, Shopping, Transport, Bills, Entertainment, Salary, Other}
}

// ParseCategory converts stored category text into the closed enum.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if s == string(c) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// ParseDirection converts stored direction text into Credit or Debit.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Credit:
		return Credit, nil
	case Debit:
		return Debit, nil
	}
	return "", fmt.Errorf("unknown transaction direction %q", s)
}

// Transaction is one immutable spending or income record. The advisory
// pipeline only ever reads transactions; ingestion happens upstream.
type Transaction struct {
	ID        string
	UserID    string
	Amount    decimal.Decimal // whole currency units, non-negative for debits
	Direction Direction
	Category  Category
	Merchant  string
	Date      time.Time
}
