package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"blind75-generator/internal/domain/model"
)

// Config contains runtime configuration values.
type Config struct {
	ServerAddress   string
	SampleSize      int
	ExportFilename  string
	SheetName       string
	ExportFormat    model.Format
	CatalogPath     string
	ExportSchedule  string
	ExportDir       string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	ExportRateLimit float64
	ExportRateBurst int
	ToastDuration   time.Duration
	LogLevel        string
}

const (
	defaultServerAddress   = ":8080"
	defaultSampleSize      = 75
	defaultExportFilename  = "Blind_75_Problems"
	defaultSheetName       = "Blind 75"
	defaultExportFormat    = "xlsx"
	defaultCatalogPath     = "" // embedded dataset
	defaultExportSchedule  = "" // scheduled exports disabled
	defaultExportDir       = "exports"
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultExportRateLimit = 5.0
	defaultExportRateBurst = 10
	defaultToastDuration   = 3 * time.Second
	defaultLogLevel        = "info"
)

// Load builds a Config from environment variables with sane defaults.
// A .env file in the working directory is read first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	format, err := model.ParseFormat(getenvDefault("EXPORT_FORMAT", defaultExportFormat))
	if err != nil {
		return nil, fmt.Errorf("EXPORT_FORMAT: %w", err)
	}

	cfg := &Config{
		ServerAddress:   getenvDefault("SERVER_ADDRESS", defaultServerAddress),
		SampleSize:      parseIntDefault("SAMPLE_SIZE", defaultSampleSize),
		ExportFilename:  getenvDefault("EXPORT_FILENAME", defaultExportFilename),
		SheetName:       getenvDefault("SHEET_NAME", defaultSheetName),
		ExportFormat:    format,
		CatalogPath:     getenvDefault("CATALOG_PATH", defaultCatalogPath),
		ExportSchedule:  getenvDefault("EXPORT_SCHEDULE", defaultExportSchedule),
		ExportDir:       getenvDefault("EXPORT_DIR", defaultExportDir),
		RequestTimeout:  parseDurationDefault("REQUEST_TIMEOUT", defaultRequestTimeout),
		ShutdownTimeout: parseDurationDefault("SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		ExportRateLimit: parseFloatDefault("EXPORT_RATE_LIMIT", defaultExportRateLimit),
		ExportRateBurst: parseIntDefault("EXPORT_RATE_BURST", defaultExportRateBurst),
		ToastDuration:   parseDurationDefault("TOAST_DURATION", defaultToastDuration),
		LogLevel:        getenvDefault("LOG_LEVEL", defaultLogLevel),
	}

	if cfg.SampleSize <= 0 {
		return nil, fmt.Errorf("SAMPLE_SIZE must be positive, got %d", cfg.SampleSize)
	}

	// Zero disables export rate limiting.
	if cfg.ExportRateLimit < 0 {
		return nil, fmt.Errorf("EXPORT_RATE_LIMIT must not be negative, got %g", cfg.ExportRateLimit)
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.ToastDuration <= 0 {
		cfg.ToastDuration = defaultToastDuration
	}

	if cfg.ExportRateBurst <= 0 {
		cfg.ExportRateBurst = defaultExportRateBurst
	}

	return cfg, nil
}

func getenvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseIntDefault(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func parseFloatDefault(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return fallback
}

func parseDurationDefault(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
