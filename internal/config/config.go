package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	RedisAddr   string
	KafkaBroker string

	JWTSecret string

	// Worker tuning
	AbsenceJobInterval time.Duration
	OutboxPollInterval time.Duration
}

// Load reads .env (when present) and materializes the environment.
// Missing values fall back to development defaults.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port: getEnv("PORT", "3000"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "ckcm_payroll"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBroker: getEnv("KAFKA_BROKER", ""),

		JWTSecret: getEnv("JWT_SECRET", ""),

		AbsenceJobInterval: getDuration("ABSENCE_JOB_INTERVAL_SECONDS", 300),
		OutboxPollInterval: getDuration("OUTBOX_POLL_INTERVAL_SECONDS", 3),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallbackSeconds int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return time.Duration(fallbackSeconds) * time.Second
}
