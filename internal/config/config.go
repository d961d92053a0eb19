package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	App   AppConfig
	CORS  CORSConfig
	Email EmailConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Name    string
	Version string
	Debug   bool
	Port    string
	Host    string
}

// CORSConfig holds CORS configuration.
type CORSConfig struct {
	AllowedOrigins []string
}

// EmailConfig holds mail relay configuration. The sender account doubles
// as the From address; HelpdeskEmail is the fixed destination of every
// submission.
type EmailConfig struct {
	Enabled       bool
	Host          string
	Port          int
	Username      string
	Password      string
	HelpdeskEmail string
}

// Load loads configuration from environment variables, reading .env first
// when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		App: AppConfig{
			Name:    getEnv("APP_NAME", "Helpdesk Query API"),
			Version: getEnv("APP_VERSION", "1.0.0"),
			Debug:   getEnvAsBool("DEBUG", false),
			Port:    getEnv("PORT", "8080"),
			Host:    getEnv("HOST", "0.0.0.0"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", nil),
		},
		Email: EmailConfig{
			Enabled:       getEnvAsBool("EMAIL_ENABLED", false),
			Host:          getEnv("EMAIL_HOST", ""),
			Port:          getEnvAsInt("SMTP_PORT", 587),
			Username:      getEnv("EMAIL_USER", ""),
			Password:      getEnv("EMAIL_PASSWORD", ""),
			HelpdeskEmail: getEnv("HELP_DESK_EMAIL", ""),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func validateConfig(cfg *Config) error {
	if cfg.App.Port == "" {
		return fmt.Errorf("PORT must be set")
	}
	if cfg.Email.Enabled {
		if cfg.Email.Host == "" {
			return fmt.Errorf("EMAIL_HOST must be set when email is enabled")
		}
		if cfg.Email.Username == "" || cfg.Email.Password == "" {
			return fmt.Errorf("EMAIL_USER and EMAIL_PASSWORD must be set when email is enabled")
		}
		if cfg.Email.HelpdeskEmail == "" {
			return fmt.Errorf("HELP_DESK_EMAIL must be set when email is enabled")
		}
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
