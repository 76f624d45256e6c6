package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string        `validate:"required"`
	MySQLDSN   string        `validate:"required"`
	RedisAddr  string        `validate:"required"`
	RedisDB    int           `validate:"gte=0"`
	RedisPass  string
	SessionTTL time.Duration `validate:"gt=0"`
	BcryptCost int           `validate:"gte=4,lte=31"`
}

// Load builds Config from environment with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		MySQLDSN:   getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/recipeshare?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:  getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:    getEnvInt("REDIS_DB", 0),
		RedisPass:  os.Getenv("REDIS_PASSWORD"),
		SessionTTL: getEnvDuration("SESSION_TTL", 7*24*time.Hour),
		BcryptCost: getEnvInt("BCRYPT_COST", 10),
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
