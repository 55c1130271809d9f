package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	CatalogSourceStatic = "static"
	CatalogSourceXLSX   = "xlsx"
	CatalogSourceSheets = "sheets"
)

var DefaultEnvConfig *envConfig

type envConfig struct {
	// server config
	APP_PORT         string
	SHUTDOWN_TIMEOUT time.Duration
	// logger config
	LOG_FILE_PATH string
	LOG_LEVEL     string
	// shopper state
	STORAGE_DIR string
	// catalog config
	CATALOG_SOURCE        string
	CATALOG_XLSX_PATH     string
	CATALOG_XLSX_SHEET    string
	CATALOG_FETCH_TIMEOUT time.Duration
	// google sheets config
	GOOGLE_SERVICE_ACCOUNT_EMAIL string
	GOOGLE_PRIVATE_KEY           string
	GOOGLE_SHEET_ID              string
	GOOGLE_SHEET_RANGE           string
}

// LoadEnvConfig reads .env (when present) and the process environment into
// DefaultEnvConfig.
func LoadEnvConfig() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	DefaultEnvConfig = &envConfig{
		APP_PORT:                     getEnvString("APP_PORT", "8080"),
		SHUTDOWN_TIMEOUT:             getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		LOG_FILE_PATH:                getEnvString("LOG_FILE_PATH", ""),
		LOG_LEVEL:                    getEnvString("LOG_LEVEL", "info"),
		STORAGE_DIR:                  getEnvString("STORAGE_DIR", ".storefront"),
		CATALOG_SOURCE:               strings.ToLower(getEnvString("CATALOG_SOURCE", CatalogSourceStatic)),
		CATALOG_XLSX_PATH:            getEnvString("CATALOG_XLSX_PATH", "catalog.xlsx"),
		CATALOG_XLSX_SHEET:           getEnvString("CATALOG_XLSX_SHEET", "Sheet1"),
		CATALOG_FETCH_TIMEOUT:        getEnvDuration("CATALOG_FETCH_TIMEOUT", 15*time.Second),
		GOOGLE_SERVICE_ACCOUNT_EMAIL: getEnvString("GOOGLE_SERVICE_ACCOUNT_EMAIL", ""),
		GOOGLE_PRIVATE_KEY:           unescapeNewlines(getEnvString("GOOGLE_PRIVATE_KEY", "")),
		GOOGLE_SHEET_ID:              getEnvString("GOOGLE_SHEET_ID", ""),
		GOOGLE_SHEET_RANGE:           getEnvString("GOOGLE_SHEET_RANGE", "Sheet1!A1:Q"),
	}
	return nil
}

// unescapeNewlines turns the literal "\n" sequences of a single-line PEM key
// back into line breaks.
func unescapeNewlines(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}

func getEnvString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
		if i, err := strconv.Atoi(val); err == nil {
			return time.Duration(i) * time.Second
		}
	}
	return fallback
}
