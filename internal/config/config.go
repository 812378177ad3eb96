package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	JWT      JWTConfig
	Business BusinessConfig
	Storage  StorageConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	FrontendURL string
}

// JWTConfig holds the verification key for tokens issued by the external
// identity platform. This service never issues tokens itself.
type JWTConfig struct {
	Secret string
}

// BusinessConfig pins the single fixed business timezone. The original
// deployment runs every site on one offset; per-schedule IANA zones are
// stored but not resolved (known limitation).
type BusinessConfig struct {
	TimezoneName  string
	OffsetMinutes int
}

type StorageConfig struct {
	BasePath string
}

func Load() (*Config, error) {
	// A missing .env is fine in production, env vars are set directly
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "timeclock"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	offsetMinutes, err := strconv.Atoi(getEnv("BUSINESS_TZ_OFFSET_MINUTES", "-360"))
	if err != nil {
		return nil, fmt.Errorf("invalid BUSINESS_TZ_OFFSET_MINUTES: %w", err)
	}

	config.Business = BusinessConfig{
		TimezoneName:  getEnv("BUSINESS_TZ_NAME", "America/Mexico_City"),
		OffsetMinutes: offsetMinutes,
	}

	config.Storage = StorageConfig{
		BasePath: getEnv("STORAGE_BASE_PATH", "./uploads"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Business.OffsetMinutes < -14*60 || c.Business.OffsetMinutes > 14*60 {
		return fmt.Errorf("BUSINESS_TZ_OFFSET_MINUTES out of range")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// BusinessLocation returns the fixed-offset location used for workday
// assignment and justification timestamps.
func (c *Config) BusinessLocation() *time.Location {
	return time.FixedZone(c.Business.TimezoneName, c.Business.OffsetMinutes*60)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
