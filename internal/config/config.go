package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Attendance AttendanceConfig
	Redis      RedisConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
	Timezone string
}

// AttendanceConfig carries the time-accounting thresholds. It is passed into
// the attendance engine explicitly so tests can vary thresholds per case.
type AttendanceConfig struct {
	// GracePeriodMinutes applies when a shift does not set its own grace period.
	GracePeriodMinutes int
	// OvertimeThresholdMinutes is the minimum overrun before a checkout is
	// flagged as an overtime candidate.
	OvertimeThresholdMinutes int
	// DefaultBreakMinutes applies when a shift does not set an allowed break.
	DefaultBreakMinutes int
}

// RedisConfig holds the optional stats-cache connection. An empty Addr
// disables caching entirely.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on process environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "workpulse-attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Timezone: getEnv("APP_TIMEZONE", "UTC"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Attendance engine thresholds
	gracePeriod, err := strconv.Atoi(getEnv("GRACE_PERIOD_MINUTES", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid GRACE_PERIOD_MINUTES: %w", err)
	}
	otThreshold, err := strconv.Atoi(getEnv("OT_THRESHOLD_MINUTES", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid OT_THRESHOLD_MINUTES: %w", err)
	}
	defaultBreak, err := strconv.Atoi(getEnv("DEFAULT_BREAK_MINUTES", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_BREAK_MINUTES: %w", err)
	}
	config.Attendance = AttendanceConfig{
		GracePeriodMinutes:       gracePeriod,
		OvertimeThresholdMinutes: otThreshold,
		DefaultBreakMinutes:      defaultBreak,
	}

	// Optional stats cache
	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	config.Redis = RedisConfig{
		Addr:     getEnv("REDIS_ADDR", ""),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       redisDB,
	}

	// Validate required fields
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
	if c.Attendance.GracePeriodMinutes < 0 {
		return fmt.Errorf("GRACE_PERIOD_MINUTES must not be negative")
	}
	if c.Attendance.OvertimeThresholdMinutes < 0 {
		return fmt.Errorf("OT_THRESHOLD_MINUTES must not be negative")
	}
	if c.Attendance.DefaultBreakMinutes <= 0 {
		return fmt.Errorf("DEFAULT_BREAK_MINUTES must be positive")
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

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
