package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	GitHub   GitHubConfig
}

type ServerConfig struct {
	Addr string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type GitHubConfig struct {
	// WebhookSecret - общий секрет для проверки подписи вебхуков.
	// Значения по умолчанию нет: пустой секрет означает отказ в обработке.
	// Никогда не логируется
	WebhookSecret string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Addr: getEnv("SERVER_ADDR", ":8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "ingest"),
			Password: getEnv("DB_PASSWORD", "ingest"),
			DBName:   getEnv("DB_NAME", "webhook_ingest"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		GitHub: GitHubConfig{
			WebhookSecret: os.Getenv("GITHUB_WEBHOOK_SECRET"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
