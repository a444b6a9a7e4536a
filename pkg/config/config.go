package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultMaxUploadBytes caps the multipart body at 16 MiB.
const DefaultMaxUploadBytes = 16 << 20

type Config struct {
	Port           string
	AppEnv         string
	LogLevel       string
	UploadDir      string
	MaxUploadBytes int
	JobSource      string
	JobCatalogPath string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	return Config{
		Port:           getEnv("PORT", "8080"),
		AppEnv:         getEnv("APP_ENV", "local"),
		LogLevel:       os.Getenv("LOG_LEVEL"),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadBytes: getEnvInt("MAX_UPLOAD_BYTES", DefaultMaxUploadBytes),
		JobSource:      getEnv("JOB_SOURCE", "static"),
		JobCatalogPath: os.Getenv("JOB_CATALOG_PATH"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
