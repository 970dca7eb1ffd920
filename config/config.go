package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"activity-log/normalize"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	LogLevel            string
	Report              string
	Format              string
	StrictColumns       bool
	AccessPolicy        string
	AccessAllowList     []string
	ExcludedAgents      []string
	NullDatePolicy      string
	CaseSensitiveStatus bool
	MetricsAddr         string
	PushGatewayURL      string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		Report:          getEnv("REPORT_KIND", "collector"),
		Format:          getEnv("OUTPUT_FORMAT", "text"),
		AccessPolicy:    getEnv("ACCESS_POLICY", "first-token"),
		AccessAllowList: SplitList(getEnv("ACCESS_ALLOW_LIST", strings.Join(normalize.DefaultAllowList, ";")), ";"),
		ExcludedAgents:  SplitList(getEnv("EXCLUDED_AGENTS", ""), ","),
		NullDatePolicy:  getEnv("NULL_DATE_POLICY", "exclude"),
		MetricsAddr:     getEnv("METRICS_ADDR", ""),
		PushGatewayURL:  getEnv("PUSHGATEWAY_URL", ""),
	}

	var err error
	config.StrictColumns, err = strconv.ParseBool(getEnv("STRICT_COLUMNS", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid STRICT_COLUMNS: %w", err)
	}

	config.CaseSensitiveStatus, err = strconv.ParseBool(getEnv("CASE_SENSITIVE_STATUS", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid CASE_SENSITIVE_STATUS: %w", err)
	}

	return config, nil
}

// getEnv gets an environment variable with a fallback default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// SplitList splits a separated list, trimming entries and dropping empty ones
func SplitList(value, sep string) []string {
	var out []string
	for _, item := range strings.Split(value, sep) {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
