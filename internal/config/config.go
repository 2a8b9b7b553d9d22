package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration values
type Config struct {
	Env                string
	DriverFeePerDay    float64
	LatePenaltyPerHour float64
}

// Load reads configuration from a .env file when present, falling back
// to environment variables and built-in defaults
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables only")
	}

	return Config{
		Env:                getEnv("ENV", "development"),
		DriverFeePerDay:    getEnvFloat("DRIVER_FEE_PER_DAY", 100000),
		LatePenaltyPerHour: getEnvFloat("LATE_PENALTY_PER_HOUR", 20000),
	}
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("Invalid value for %s, using default: %v", key, err)
		return fallback
	}
	return parsed
}
