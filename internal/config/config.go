// Package config loads collsheet settings from the environment.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/ukaji3/collsheet-go/pkg/collsheet"
	"go.uber.org/zap/zapcore"
)

// Environment variable names.
const (
	EnvCredentialsJSON    = "GSHEET_CREDENTIALS_JSON"
	EnvSpreadsheetID      = "SPREADSHEET_ID"
	EnvSheetName          = "COLLECTION_SHEET_NAME"
	EnvCollectionIDFilter = "COLLECTION_ID_FILTER"
	EnvLogLevel           = "LOG_LEVEL"
)

// Config holds runtime configuration sourced from the environment.
type Config struct {
	// CredentialsJSON is the service-account key JSON for the Sheets API.
	CredentialsJSON string
	SpreadsheetID   string
	SheetName       string
	// CollectionIDFilter is nil when the variable is unset.
	CollectionIDFilter *string
	LogLevel           zapcore.Level
}

// LoadFromEnv loads .env (if present) and reads configuration from the environment.
func LoadFromEnv() (*Config, error) {
	// Load .env file if it exists (no error if missing)
	_ = godotenv.Load()
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from a lookup function shaped like os.LookupEnv.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key string) string {
		v, _ := lookup(key)
		return v
	}

	cfg := &Config{
		CredentialsJSON: get(EnvCredentialsJSON),
		SpreadsheetID:   strings.TrimSpace(get(EnvSpreadsheetID)),
		SheetName:       get(EnvSheetName),
		LogLevel:        zapcore.InfoLevel,
	}

	if cfg.SheetName == "" {
		cfg.SheetName = collsheet.DefaultSheetName
	}

	if raw, ok := lookup(EnvCollectionIDFilter); ok {
		cfg.CollectionIDFilter = &raw
	}

	if level := strings.TrimSpace(get(EnvLogLevel)); level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}
