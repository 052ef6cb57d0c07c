package domain

import "github.com/shopspring/decimal"

// DefaultMonthlyBudget is substituted when a user has not configured a
// monthly budget.
var DefaultMonthlyBudget = decimal.NewFromInt(40000)

// User is read-only from the advisory pipeline's perspective.
type User struct {
	ID            string
	Name          string
	Email         string
	MonthlyBudget decimal.Decimal // zero means "not configured"
}

// EffectiveBudget returns the budget every consumer should classify
// against: the configured monthly budget, or DefaultMonthlyBudget when none
// is set. A negative stored budget is a configuration anomaly and passes
// through unchanged; the classifier handles it without a special case.
func (u User) EffectiveBudget() decimal.Decimal {
	if u.MonthlyBudget.IsZero() {
		return DefaultMonthlyBudget
	}
	return u.MonthlyBudget
}
