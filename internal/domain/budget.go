package domain

import "github.com/shopspring/decimal"

// Zone is the discrete risk classification of month-to-date spending
// relative to budget.
type Zone string

const (
	ZoneGreen  Zone = "Green"
	ZoneYellow Zone = "Yellow"
	ZoneRed    Zone = "Red"
)

// BudgetStatus is derived fresh on every request and never persisted; the
// zone is always a pure function of spent and budget.
type BudgetStatus struct {
	Zone   Zone
	Spent  decimal.Decimal
	Budget decimal.Decimal
}

// Summary maps a category to its month-to-date debit total. Only
// categories that actually occurred in the month appear as keys.
type Summary map[Category]decimal.Decimal

var yellowThreshold = decimal.NewFromFloat(0.75)

// Classify maps spending against a budget to a zone. Thresholds are
// evaluated in order, first match wins, strict > on both boundaries:
// spent == budget is not Red, and spent == 0.75*budget is not Yellow.
// A non-positive budget needs no special case: any positive spend exceeds
// it under the same comparison.
func Classify(spent, budget decimal.Decimal) Zone {
	switch {
	case spent.GreaterThan(budget):
		return ZoneRed
	case spent.GreaterThan(budget.Mul(yellowThreshold)):
		return ZoneYellow
	default:
		return ZoneGreen
	}
}

// NewBudgetStatus classifies and packages the result.
func NewBudgetStatus(spent, budget decimal.Decimal) BudgetStatus {
	return BudgetStatus{
		Zone:   Classify(spent, budget),
		Spent:  spent,
		Budget: budget,
	}
}
