package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Default Google Drive file holding final_dashboard_dataset.csv
const defaultDatasetFileID = "1LP5xE44rZJ0ep3N3Q5dxGci4EOT_-NV0"

// Columns names the dataset columns the dashboard reads.
type Columns struct {
	Brand          string
	Category       string
	ActualPrice    string
	PredictedPrice string
}

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Port         string
	Env          string
	AllowOrigins string

	DatasetPath   string
	DatasetFileID string
	DatasetURL    string

	ModelPath    string
	ScalerPath   string
	ColumnsPath  string
	DefaultsPath string

	Columns Columns

	// DBDSN switches the dataset source to MySQL when set.
	DBDSN   string
	DBTable string
}

// Load reads the .env file and returns a populated Config.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("[config] No .env file found, falling back to system env vars")
	}

	cfg := &Config{
		Port:         getEnv("PORT", "8050"),
		Env:          getEnv("APP_ENV", "production"),
		AllowOrigins: getEnv("ALLOW_ORIGINS", "*"),

		DatasetPath:   getEnv("DATASET_PATH", "final_dashboard_dataset.csv"),
		DatasetFileID: getEnv("DATASET_FILE_ID", defaultDatasetFileID),
		DatasetURL:    os.Getenv("DATASET_URL"),

		ModelPath:    getEnv("MODEL_PATH", "model.json"),
		ScalerPath:   getEnv("SCALER_PATH", "scaler.json"),
		ColumnsPath:  getEnv("COLUMNS_PATH", "model_columns.json"),
		DefaultsPath: getEnv("DEFAULTS_PATH", "default_numeric_values.json"),

		Columns: Columns{
			Brand:          getEnv("BRAND_COL", "Brand"),
			Category:       getEnv("CATEGORY_COL", "Category1"),
			ActualPrice:    getEnv("ACTUAL_PRICE_COL", "Price"),
			PredictedPrice: getEnv("PREDICTED_PRICE_COL", "predicted"),
		},

		DBDSN:   os.Getenv("DB_DSN"),
		DBTable: getEnv("DB_TABLE", "dashboard_rows"),
	}

	if cfg.DatasetURL == "" {
		cfg.DatasetURL = DriveURL(cfg.DatasetFileID)
	}
	return cfg
}

// DriveURL returns the direct download link for a shared Google Drive file.
func DriveURL(fileID string) string {
	return fmt.Sprintf("https://drive.google.com/uc?id=%s", fileID)
}

// IsDevelopment reports whether APP_ENV selects development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
