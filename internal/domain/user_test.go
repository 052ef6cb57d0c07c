package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestEffectiveBudget(t *testing.T) {
	tests := []struct {
		name   string
		budget decimal.Decimal
		want   int64
	}{
		{
			name:   "configured budget wins",
			budget: decimal.NewFromInt(60000),
			want:   60000,
		},
		{
			name:   "unset budget falls back to the platform default",
			budget: decimal.Decimal{},
			want:   40000,
		},
		{
			name:   "negative budget passes through unchanged",
			budget: decimal.NewFromInt(-1000),
			want:   -1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := User{ID: "u1", Name: "Rohan", MonthlyBudget: tt.budget}
			got := u.EffectiveBudget()
			if !got.Equal(decimal.NewFromInt(tt.want)) {
				t.Errorf("EffectiveBudget() = %v, want %d", got, tt.want)
			}
		})
	}
}

// A user with no configured budget and 35,000 spent lands in Yellow
// against the 40,000 default.
func TestDefaultBudgetClassification(t *testing.T) {
	u := User{ID: "u1", Name: "Priya"}

	zone := Classify(decimal.NewFromInt(35000), u.EffectiveBudget())
	if zone != ZoneYellow {
		t.Errorf("Classify(35000, default) = %v, want %v", zone, ZoneYellow)
	}
}
