// @title         argn ATS matcher API
// @version       1.0
// @description   Scores an uploaded resume against job postings for a role with TF-IDF cosine similarity and returns the postings ranked by match.
// @BasePath      /
// @schemes       http
// @host          localhost:8080
package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	_ "github.com/Amrit-Raj-17/Argn/docs"

	// internal imports
	"github.com/Amrit-Raj-17/Argn/api/http"
	"github.com/Amrit-Raj-17/Argn/api/http/handlers"
	"github.com/Amrit-Raj-17/Argn/pkg/analysis"
	"github.com/Amrit-Raj-17/Argn/pkg/config"
	"github.com/Amrit-Raj-17/Argn/pkg/health"
	"github.com/Amrit-Raj-17/Argn/pkg/health/checkers"
	"github.com/Amrit-Raj-17/Argn/pkg/logger"
	"github.com/Amrit-Raj-17/Argn/pkg/nlp"
	"github.com/Amrit-Raj-17/Argn/pkg/resume"
	"github.com/Amrit-Raj-17/Argn/pkg/similarity"
	"github.com/Amrit-Raj-17/Argn/pkg/storage/upload"
	"github.com/Amrit-Raj-17/Argn/pkg/vacancy"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()

	lg, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	// Stopwords and lemma tables are loaded once before the first request
	nlp.Warmup()

	app, err := newApp(cfg, lg)
	if err != nil {
		lg.Fatal("init app", zap.Error(err))
	}

	lg.Info("HTTP server listening",
		zap.String("port", cfg.Port),
		zap.String("env", cfg.AppEnv),
		zap.String("job_source", cfg.JobSource),
		zap.String("upload_dir", cfg.UploadDir),
	)
	if err := app.Listen(":" + cfg.Port); err != nil {
		lg.Fatal("server stopped", zap.Error(err))
	}
}

// newApp wires the analysis and health handlers onto a Fiber app. One limit
// bounds both the request body and the uploaded file.
func newApp(cfg config.Config, lg *zap.Logger) (*fiber.App, error) {
	source, err := vacancy.NewSource(cfg.JobSource, cfg.JobCatalogPath)
	if err != nil {
		return nil, fmt.Errorf("init job source: %w", err)
	}

	store := upload.NewStore(cfg.UploadDir)
	analysisUC := analysis.NewService(resume.NewParser(), nlp.Default(), similarity.NewScorer(), source, store)
	analysisHandler := handlers.NewAnalysisHandler(analysisUC, int64(cfg.MaxUploadBytes))

	// Health service: compose checkers
	readiness := health.NewService(checkers.NewWritableDirChecker(store.Dir()))
	healthHandler := handlers.NewHealthHandler(readiness)

	app := http.NewApp(cfg.MaxUploadBytes, lg)
	http.Register(app, analysisHandler, healthHandler)
	return app, nil
}
