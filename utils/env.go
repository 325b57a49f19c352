package utils

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("ℹ️  No .env file found, continuing...")
	}
}

// envOrDefault returns the environment value or the fallback.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// SchemaFile returns the default schema file path.
func SchemaFile() string {
	return envOrDefault("INDEXO_SCHEMA_FILE", "schema.yaml")
}

// ModelsDir returns the default models directory.
func ModelsDir() string {
	return envOrDefault("INDEXO_MODELS_DIR", "models")
}

// ReportsDir returns the default reports output directory.
func ReportsDir() string {
	return envOrDefault("INDEXO_REPORTS_DIR", "reports")
}
