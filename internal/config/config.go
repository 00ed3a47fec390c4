package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port      string
	DBDSN     string
	JWTSecret string
	TokenTTL  time.Duration
	LogFile   string
	// TaskDelay is the simulated latency for long-running operations
	// (integration connect/disconnect, report generation).
	TaskDelay time.Duration
}

func Load() Config {
	cfg := Config{
		Port:      getEnv("PORT", "8080"),
		DBDSN:     getEnv("DB_DSN", "vendorsphere.db"),
		JWTSecret: getEnv("JWT_SECRET", "dev_secret_change_me"),
		TokenTTL:  time.Duration(getEnvInt("TOKEN_TTL_MINUTES", 60)) * time.Minute,
		LogFile:   getEnv("LOG_FILE", ""),
		TaskDelay: time.Duration(getEnvInt("TASK_DELAY_MS", 1500)) * time.Millisecond,
	}
	log.Printf("[config] PORT=%s DB_DSN=%s TASK_DELAY=%s", cfg.Port, cfg.DBDSN, cfg.TaskDelay)
	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}
