package common

import (
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	OCR    OCRConfig
	Batch  BatchConfig
	Tariff TariffConfig
}

// OCRConfig holds tesseract-related configuration
type OCRConfig struct {
	Tesseract     string // binary name or absolute path; if empty -> "tesseract"
	TesseractLang string // default "eng"
	TessdataDir   string
	PSM           int // e.g., 6 is good for uniform block of text
	OEM           int // 1 = LSTM; leave 0 to use default
}

// BatchConfig holds batch-processing configuration
type BatchConfig struct {
	Workers int
}

// TariffConfig holds tariff-vocabulary configuration
type TariffConfig struct {
	ConfigPath string // optional JSON vocabulary file; empty -> built-in defaults
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		OCR: OCRConfig{
			Tesseract:     getEnv("TESSERACT_BIN", "tesseract"),
			TesseractLang: getEnv("TESSERACT_LANG", "eng"),
			TessdataDir:   getEnv("TESSDATA_PREFIX", ""),
			PSM:           getEnvAsInt("TESSERACT_PSM", 0),
			OEM:           getEnvAsInt("TESSERACT_OEM", 0),
		},
		Batch: BatchConfig{
			Workers: getEnvAsInt("BILLSCAN_WORKERS", 4),
		},
		Tariff: TariffConfig{
			ConfigPath: getEnv("BILLSCAN_TARIFFS", ""),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.OCR.Tesseract == "" {
		return NewAppError("CONFIG_ERROR", "TESSERACT_BIN is required", ErrInvalidInput)
	}
	if c.Batch.Workers < 1 {
		return NewAppError("CONFIG_ERROR", "BILLSCAN_WORKERS must be at least 1", ErrInvalidInput)
	}
	return nil
}
