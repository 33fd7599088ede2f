package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/omarsakr/SakrStore/utils"
)

// Config holds all configuration for the application
type Config struct {
	Port               string
	Env                string
	CatalogURL         string
	CouponsURL         string
	WhatsAppNumber     string
	AnalyticsEndpoint  string
	SessionSecret      string
	SessionMaxAgeHours int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		return nil, utils.WrapError(err, "error loading .env file")
	}

	config := &Config{
		Port:               getEnv("PORT", utils.DefaultPort),
		Env:                os.Getenv("ENV"),
		CatalogURL:         os.Getenv("CATALOG_URL"),
		CouponsURL:         os.Getenv("COUPONS_URL"),
		WhatsAppNumber:     os.Getenv("WHATSAPP_NUMBER"),
		AnalyticsEndpoint:  os.Getenv("ANALYTICS_ENDPOINT"),
		SessionSecret:      getEnv("SESSION_SECRET", "change-me"),
		SessionMaxAgeHours: 24 * 30,
	}

	if config.CatalogURL == "" {
		return nil, fmt.Errorf("CATALOG_URL is required")
	}

	return config, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
