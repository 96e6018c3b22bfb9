package app

import (
	"os"
	"strconv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config is the process configuration, read once from the environment at
// startup (after godotenv has loaded .env, if present).
type Config struct {
	Port          string
	StorageDriver string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	RedisAddr    string
	KafkaBrokers string

	AnnualLeaveAllotment  int
	PayrollPaymentDueDays int
}

func LoadConfig() Config {
	return Config{
		Port:          envOr("PORT", "3000"),
		StorageDriver: envOr("STORAGE_DRIVER", StorageMemory),

		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     envOr("DB_PORT", "5432"),
		DBSSLMode:  envOr("DB_SSLMODE", "disable"),

		RedisAddr:    os.Getenv("REDIS_ADDR"),
		KafkaBrokers: os.Getenv("KAFKA_BROKERS"),

		AnnualLeaveAllotment:  envIntOr("ANNUAL_LEAVE_ALLOTMENT", 12),
		PayrollPaymentDueDays: envIntOr("PAYROLL_PAYMENT_DUE_DAYS", 7),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
