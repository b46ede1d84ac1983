package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultEndpoint is the homework statuses API URL.
const DefaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

// Config holds all application configuration
type Config struct {
	PracticumToken string
	BotToken       string
	ChatID         int64

	Endpoint       string
	PollInterval   time.Duration
	RequestTimeout time.Duration
}

// Load reads configuration from environment variables.
//
// On validation failure the partially-filled config is returned alongside the
// error, so the caller can still attempt a best-effort failure notification
// when the bot credentials themselves are usable.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		PracticumToken: os.Getenv("PRACTICUM_TOKEN"),
		BotToken:       os.Getenv("TELEGRAM_TOKEN"),
		Endpoint:       getEnv("ENDPOINT", DefaultEndpoint),
	}

	var missing []string
	if cfg.PracticumToken == "" {
		missing = append(missing, "PRACTICUM_TOKEN")
	}
	if cfg.BotToken == "" {
		missing = append(missing, "TELEGRAM_TOKEN")
	}

	rawChatID := os.Getenv("TELEGRAM_CHAT_ID")
	if rawChatID == "" {
		missing = append(missing, "TELEGRAM_CHAT_ID")
	} else {
		chatID, err := strconv.ParseInt(rawChatID, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("TELEGRAM_CHAT_ID is not a valid chat id: %w", err)
		}
		cfg.ChatID = chatID
	}

	pollSeconds, err := getEnvInt("POLL_INTERVAL", 600)
	if err != nil {
		return cfg, err
	}
	cfg.PollInterval = time.Duration(pollSeconds) * time.Second

	timeoutSeconds, err := getEnvInt("REQUEST_TIMEOUT", 15)
	if err != nil {
		return cfg, err
	}
	cfg.RequestTimeout = time.Duration(timeoutSeconds) * time.Second

	if len(missing) > 0 {
		return cfg, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive number of seconds, got %q", key, value)
	}
	return n, nil
}
