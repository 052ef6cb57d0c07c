package advisor

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rupai/backend/internal/domain"
)

// MonthWindow returns the calendar month containing now as a half-open
// range: the first instant of the month through (exclusive) the first
// instant of the next month. This covers the first through last day of the
// month inclusive.
func MonthWindow(now time.Time) (from, to time.Time) {
	from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to = from.AddDate(0, 1, 0)
	return from, to
}

// Summarize folds one month of transactions into the total spent and the
// per-category breakdown. Credits are ignored; zero transactions yield a
// zero total and an empty summary, not an error.
func Summarize(txs []domain.Transaction) (decimal.Decimal, domain.Summary) {
	total := decimal.Zero
	summary := domain.Summary{}

	for _, t := range txs {
		if t.Direction != domain.Debit {
			continue
		}
		total = total.Add(t.Amount)
		summary[t.Category] = summary[t.Category].Add(t.Amount)
	}

	return total, summary
}
