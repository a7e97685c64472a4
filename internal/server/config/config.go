package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config содержит конфигурацию сервера, загружаемую из окружения
type Config struct {
	Address         string
	DatabasePath    string
	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	BcryptCost      int
	LogLevel        string
}

// Load читает конфигурацию из переменных окружения.
// JWT_SECRET обязателен и должен быть достаточно длинным для HMAC-SHA256.
func Load() (*Config, error) {
	cfg := &Config{
		Address:         readString("ADDRESS", ":8080"),
		DatabasePath:    readString("DATABASE_PATH", "finkeeper.db"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		AccessTokenTTL:  readDuration("ACCESS_TOKEN_TTL", 15*time.Minute),
		RefreshTokenTTL: readDuration("REFRESH_TOKEN_TTL", 7*24*time.Hour),
		BcryptCost:      readInt("BCRYPT_COST", 12),
		LogLevel:        readString("LOG_LEVEL", "info"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}
	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 32 characters")
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return nil, fmt.Errorf("BCRYPT_COST must be between 4 and 31, got %d", cfg.BcryptCost)
	}

	return cfg, nil
}

func readString(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func readInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func readDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return value
}
