// The seeder populates a fresh database with demo users and a realistic
// spread of monthly transactions so the advisory endpoint has data to
// ground against.
package main

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/rupai/backend/internal/domain"
	"github.com/rupai/backend/internal/logger"
	"github.com/rupai/backend/internal/store/postgres"
)

var debitCategories = []domain.Category{
	domain.Food,
	domain.Shopping,
	domain.Transport,
	domain.Bills,
	domain.Entertainment,
}

var merchants = map[domain.Category][]string{
	domain.Food:          {"Zomato", "Swiggy", "Local Cafe", "Groceries"},
	domain.Shopping:      {"Amazon", "Myntra", "Zara", "Croma"},
	domain.Transport:     {"Uber", "Ola", "Rapido", "Metro Card"},
	domain.Bills:         {"Airtel", "BSES Electricity", "Rent"},
	domain.Entertainment: {"Netflix", "BookMyShow", "Prime Video"},
}

func pick[T any](items []T) T {
	return items[rand.Intn(len(items))]
}

// between returns a random whole-rupee amount in [min, max].
func between(min, max int64) int64 {
	return min + rand.Int63n(max-min+1)
}

// generateTransactions produces numMonths of history for one user: 20-40
// debits per month across the spending categories, plus one salary credit.
func generateTransactions(userID string, numMonths int) []domain.Transaction {
	var txs []domain.Transaction
	today := time.Now()

	for i := 0; i < numMonths; i++ {
		monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.Local).AddDate(0, -i, 0)

		numDebits := int(between(20, 40))
		for j := 0; j < numDebits; j++ {
			category := pick(debitCategories)
			txs = append(txs, domain.Transaction{
				ID:        uuid.NewString(),
				UserID:    userID,
				Amount:    decimal.NewFromInt(between(50, 2500)),
				Direction: domain.Debit,
				Category:  category,
				Merchant:  pick(merchants[category]),
				Date:      monthStart.AddDate(0, 0, int(between(0, 27))),
			})
		}

		txs = append(txs, domain.Transaction{
			ID:        uuid.NewString(),
			UserID:    userID,
			Amount:    decimal.NewFromInt(between(45000, 75000)),
			Direction: domain.Credit,
			Category:  domain.Salary,
			Merchant:  "Company Inc.",
			Date:      monthStart,
		})
	}
	return txs
}

func main() {
	log := logger.New()

	_ = godotenv.Load()

	cfg, err := loadSeederConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	ctx := context.Background()

	store, err := postgres.New(ctx, cfg.databaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	count, err := store.CountTransactions(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to count transactions")
	}
	if count > 0 {
		log.Info().Int64("transactions", count).Msg("Database already seeded, skipping")
		return
	}

	// Rohan gets a year of history; Priya one month with no configured
	// budget, so she exercises the platform default.
	users := []struct {
		user   domain.User
		months int
	}{
		{
			user: domain.User{
				ID:            uuid.NewString(),
				Name:          "Rohan",
				Email:         "rohan@example.com",
				MonthlyBudget: decimal.NewFromInt(40000),
			},
			months: 12,
		},
		{
			user: domain.User{
				ID:    uuid.NewString(),
				Name:  "Priya",
				Email: "priya@example.com",
			},
			months: 1,
		},
	}

	for _, entry := range users {
		if err := store.InsertUser(ctx, entry.user); err != nil {
			log.Fatal().Err(err).Msg("Failed to insert user")
		}

		txs := generateTransactions(entry.user.ID, entry.months)
		inserted, err := store.CopyTransactions(ctx, txs)
		if err != nil {
			log.Fatal().Err(err).Str("user", entry.user.Name).Msg("Failed to insert transactions")
		}

		log.Info().
			Str("user", entry.user.Name).
			Int64("transactions", inserted).
			Msg("Seeded user")
	}

	log.Info().Msg("Seeding complete")
}
