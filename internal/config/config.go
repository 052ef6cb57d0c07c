package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything the api binary needs from the environment.
type Config struct {
	Port         string
	DatabaseURL  string
	GeminiAPIKey string
	GeminiModel  string // empty selects the client default
}

// Load reads configuration from the environment. A .env file is picked up
// when present; real deployments set the environment directly.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	return &Config{
		Port:         port,
		DatabaseURL:  dbURL,
		GeminiAPIKey: apiKey,
		GeminiModel:  os.Getenv("GEMINI_MODEL"),
	}, nil
}
