package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort   string
	DatabaseURL  string
	DatabaseName string
	RedisAddr    string
	RedisDB      int
	RedisPass    string
}

// Load builds Config from the environment, reading a .env file first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:   getEnv("PORT", "8000"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: getEnv("DATABASE_NAME", "saas_landing"),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:      getEnvInt("REDIS_DB", 0),
		RedisPass:    os.Getenv("REDIS_PASSWORD"),
	}
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
