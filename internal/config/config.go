package config

import (
	"fmt"
	"os"
)

// Config holds the configuration for the application.
type Config struct {
	GeminiAPIKey string
	GroqAPIKey   string
	DatabasePath string

	// Store search page used for web-grounded price lookups. Empty means
	// prices come from the model's own knowledge.
	PriceSearchURL string

	// Hosted entity store (optional; the CLI can run fully local)
	StoreAPIURL   string
	StoreAdminKey string

	// Telegram Config
	TelegramBotToken    string
	TelegramWebhookURL  string
	TelegramAllowUserID int64
}

// NewFromEnv creates a new Config object from environment variables.
func NewFromEnv() (*Config, error) {
	geminiAPIKey := os.Getenv("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	groqAPIKey := os.Getenv("GROQ_API_KEY")
	if groqAPIKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY environment variable not set")
	}

	databasePath := os.Getenv("DATABASE_PATH")
	if databasePath == "" {
		databasePath = "data/grocery-planner.db"
	}

	priceSearchURL := os.Getenv("PRICE_SEARCH_URL")

	// Entity store config (optional; only needed when syncing lists to the
	// hosted backend)
	storeAPIURL := os.Getenv("STORE_API_URL")
	storeAdminKey := os.Getenv("STORE_ADMIN_API_KEY")

	// Telegram Config (optional for CLI, required for Bot)
	telegramBotToken := os.Getenv("TELEGRAM_BOT_TOKEN")
	telegramWebhookURL := os.Getenv("TELEGRAM_WEBHOOK_URL")
	telegramAllowUserIDStr := os.Getenv("TELEGRAM_ALLOW_USER_ID")
	var telegramAllowUserID int64
	if telegramAllowUserIDStr != "" {
		fmt.Sscanf(telegramAllowUserIDStr, "%d", &telegramAllowUserID)
	}

	return &Config{
		GeminiAPIKey:        geminiAPIKey,
		GroqAPIKey:          groqAPIKey,
		DatabasePath:        databasePath,
		PriceSearchURL:      priceSearchURL,
		StoreAPIURL:         storeAPIURL,
		StoreAdminKey:       storeAdminKey,
		TelegramBotToken:    telegramBotToken,
		TelegramWebhookURL:  telegramWebhookURL,
		TelegramAllowUserID: telegramAllowUserID,
	}, nil
}
