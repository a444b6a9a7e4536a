package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "APP_ENV", "LOG_LEVEL", "UPLOAD_DIR", "MAX_UPLOAD_BYTES", "JOB_SOURCE", "JOB_CATALOG_PATH"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, Config{
		Port:           "8080",
		AppEnv:         "local",
		UploadDir:      "uploads",
		MaxUploadBytes: 16 << 20,
		JobSource:      "static",
	}, cfg)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("APP_ENV", "prod")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("UPLOAD_DIR", "/tmp/resumes")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")
	t.Setenv("JOB_SOURCE", "catalog")
	t.Setenv("JOB_CATALOG_PATH", "configs/jobs.yaml")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "prod", cfg.AppEnv)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "/tmp/resumes", cfg.UploadDir)
	assert.Equal(t, 1024, cfg.MaxUploadBytes)
	assert.Equal(t, "catalog", cfg.JobSource)
	assert.Equal(t, "configs/jobs.yaml", cfg.JobCatalogPath)
}

func TestLoadIgnoresBadInt(t *testing.T) {
	t.Setenv("MAX_UPLOAD_BYTES", "lots")
	assert.Equal(t, DefaultMaxUploadBytes, Load().MaxUploadBytes)

	t.Setenv("MAX_UPLOAD_BYTES", "-5")
	assert.Equal(t, DefaultMaxUploadBytes, Load().MaxUploadBytes)
}
