package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	SourceDir       string
	OrderDetailsDir string
	OrderPricingDir string
	LocationsPath   string
	OutputDir       string

	SourceTimezone string
	TargetTimezone string

	ReconcileTolerance float64

	LogLevel  string
	LogFormat string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	sourceDir := getEnv("DELIVERECT_SOURCE_DIR", filepath.Join(cwd, "data"))

	cfg := Config{
		SourceDir:       sourceDir,
		OrderDetailsDir: getEnv("ORDER_DETAILS_DIR", filepath.Join(sourceDir, "Order Details")),
		OrderPricingDir: getEnv("ORDER_PRICING_DIR", filepath.Join(sourceDir, "Order Level Pricing")),
		LocationsPath:   getEnv("LOCATIONS_PATH", filepath.Join(sourceDir, "Full Rx List, with Cleaned Names.csv")),
		OutputDir:       getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),

		SourceTimezone: getEnv("SOURCE_TIMEZONE", "UTC"),
		TargetTimezone: getEnv("TARGET_TIMEZONE", "Europe/Berlin"),

		ReconcileTolerance: getEnvFloat("RECONCILE_TOLERANCE", 0.001),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	value := strings.TrimSpace(getEnv(key, ""))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
