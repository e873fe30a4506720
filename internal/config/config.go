package config

import "os"

// Config holds application configuration
type Config struct {
	ServerPort     string
	DatabaseType   string // "sqlite" (default), "postgres" or "mysql"
	DatabasePath   string // sqlite file path
	DatabaseURL    string // postgres/mysql connection string
	MigrationsPath string
	AppBaseURL     string // public base URL used in email links
	AWSRegion      string
	SESFromEmail   string // empty disables email delivery
	SESFromName    string
	LinkSecret     string // HMAC secret for signed view-in-app links
	DefaultLocale  string
}

// Load reads configuration from environment variables with sensible defaults
func Load() *Config {
	return &Config{
		ServerPort:     getEnv("PORT", "8080"),
		DatabaseType:   getEnv("DB_TYPE", "sqlite"),
		DatabasePath:   getEnv("DB_PATH", "./starquest.db"),
		DatabaseURL:    getEnv("DB_URL", ""),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "./migrations"),
		AppBaseURL:     getEnv("APP_BASE_URL", "http://localhost:8080"),
		AWSRegion:      getEnv("AWS_REGION", "eu-west-1"),
		SESFromEmail:   getEnv("SES_FROM_EMAIL", ""),
		SESFromName:    getEnv("SES_FROM_NAME", "StarQuest"),
		LinkSecret:     getEnv("EMAIL_LINK_SECRET", ""),
		DefaultLocale:  getEnv("DEFAULT_LOCALE", "en"),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
