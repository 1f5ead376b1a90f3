package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	DBPath      string
	FrontendURL string

	SecretKey  string
	CookieName string

	WorkerSecret     string
	WorkerCron       string
	WorkerInterval   time.Duration
	WorkerBatchLimit int

	MockPublisher        bool
	PublishWebhookURL    string
	PublishWebhookSecret string
}

func LoadConfig() *Config {
	return &Config{
		Port:        getEnv("PORT", "3000"),
		DBPath:      getEnv("AUTOMNATOR_DB_PATH", ".data/automnator.db.json"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),

		SecretKey:  getEnv("SECRET_KEY", ""),
		CookieName: getEnv("COOKIE_NAME", "automnator_session"),

		WorkerSecret:     getEnv("WORKER_SECRET", ""),
		WorkerCron:       getEnv("WORKER_CRON", ""),
		WorkerInterval:   getEnvDuration("WORKER_INTERVAL", 5*time.Second),
		WorkerBatchLimit: getEnvInt("WORKER_BATCH_LIMIT", 10),

		MockPublisher:        getEnvBool("MOCK_PUBLISHER", true),
		PublishWebhookURL:    getEnv("PUBLISH_WEBHOOK_URL", ""),
		PublishWebhookSecret: getEnv("PUBLISH_WEBHOOK_SECRET", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
