package main

import (
	"fmt"
	"os"
)

type seederConfig struct {
	databaseURL string
}

// loadSeederConfig reads the database URL only; the seeder never talks to
// the model service.
func loadSeederConfig() (*seederConfig, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	return &seederConfig{databaseURL: dbURL}, nil
}
