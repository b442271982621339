package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	CryptoCompareAPIKey string
	Exchange            string
	CandleLimit         int
	RequestTimeout      int // seconds
	RequestsPerSec      int
	LogLevel            string
	TelegramBotToken    string
	ScanSymbols         []string
}

// Load initializes configuration from environment variables.
func Load() (*Config, error) {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	cfg := &Config{
		CryptoCompareAPIKey: os.Getenv("CRYPTOCOMPARE_API_KEY"),
		Exchange:            getEnvWithDefault("EXCHANGE", "Binance"),
		CandleLimit:         getEnvIntWithDefault("CANDLE_LIMIT", 300),
		RequestTimeout:      getEnvIntWithDefault("REQUEST_TIMEOUT", 30),
		RequestsPerSec:      getEnvIntWithDefault("REQUESTS_PER_SEC", 5),
		LogLevel:            getEnvWithDefault("LOG_LEVEL", "info"),
		TelegramBotToken:    os.Getenv("TELEGRAM_BOT_TOKEN"),
		ScanSymbols:         splitSymbols(getEnvWithDefault("SCAN_SYMBOLS", "BTC/USDT,ETH/USDT,SOL/USDT")),
	}

	return cfg, nil
}

// Helper functions for environment variable handling
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func splitSymbols(list string) []string {
	var symbols []string
	for _, s := range strings.Split(list, ",") {
		if s = strings.TrimSpace(s); s != "" {
			symbols = append(symbols, s)
		}
	}
	return symbols
}
