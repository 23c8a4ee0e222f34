package main

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/hamida-paiman/fraudscore/internal/api"
	"github.com/hamida-paiman/fraudscore/internal/config"
	"github.com/hamida-paiman/fraudscore/internal/feature"
	"github.com/hamida-paiman/fraudscore/internal/model"
	"github.com/hamida-paiman/fraudscore/internal/scoring"
	"github.com/hamida-paiman/fraudscore/internal/telemetry"
)

func main() {
	cfg := config.Load()

	if err := telemetry.InitLogger(cfg.Env, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer telemetry.Sync()
	logger := telemetry.Logger

	// Load the model artifact. An unavailable classifier is a startup
	// failure, never a per-request one.
	db, err := model.InitDB(cfg.ModelDBPath)
	if err != nil {
		logger.Fatal("failed to open model db", zap.String("path", cfg.ModelDBPath), zap.Error(err))
	}
	defer db.Close()

	classifier, err := model.NewStore(db).Load()
	if err != nil {
		logger.Fatal("failed to load model artifact (run `go run ./testdata/generate` to create one)",
			zap.String("path", cfg.ModelDBPath), zap.Error(err))
	}

	svc := scoring.NewService(classifier, feature.DefaultSchemaConfig(), logger)
	router := api.NewRouter(svc, classifier.Info())

	logger.Info("fraud risk estimator starting",
		zap.String("port", cfg.Port),
		zap.String("model", classifier.Name),
		zap.Float64("model_test_accuracy", classifier.TestAccuracy),
	)
	logger.Info("endpoints",
		zap.Strings("routes", []string{
			"GET  /",
			"POST /",
			"POST /api/v1/score",
			"GET  /api/v1/model",
			"GET  /healthz",
			"GET  /metrics",
		}),
	)

	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
