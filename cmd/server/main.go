package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"atsmatch/internal/config"
	"atsmatch/internal/db"
	"atsmatch/internal/jobs"
	"atsmatch/internal/logger"
	"atsmatch/internal/metrics"
	"atsmatch/internal/optimizer"
	"atsmatch/internal/privacy"
	"atsmatch/internal/server"
	"atsmatch/internal/validation"
)

func main() {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	cfg := config.Load()

	log, err := logger.New(cfg.LogJSON, cfg.LogDebug)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	yamlCfg, err := config.LoadYAMLConfig()
	if err != nil {
		log.Fatal("failed to load config file", zap.Error(err))
	}
	analyzer := yamlCfg.Analyzer()
	log.Info("keyword analyzer ready", zap.Int("stop_words", analyzer.Extractor().StopWords().Len()))

	deps := server.Deps{
		Analyzer: analyzer,
		Gatherer: prometheus.DefaultGatherer,
	}

	// Optional storage
	var store metrics.Store
	var database *db.DB
	if cfg.StorageEnabled() {
		database, err = db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal("failed to connect to database", zap.Error(err))
		}
		defer database.Close()

		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			log.Fatal("failed to run migrations", zap.Error(err))
		}
		log.Info("migrations completed successfully")

		store = database
		deps.Store = database
	} else {
		log.Info("analysis storage disabled; set DATABASE_URL to enable")
	}

	recorder := metrics.NewRecorder(prometheus.DefaultRegisterer, store, log)
	deps.Recorder = recorder

	// PII masking
	if cfg.MaskingEnabled() {
		for _, u := range []string{cfg.PresidioAnalyzerURL, cfg.PresidioAnonymizerURL} {
			if valid, msg := validation.ValidateServiceURL(u); !valid {
				log.Fatal("invalid presidio URL", zap.String("url", u), zap.String("reason", msg))
			}
		}
		masker, err := privacy.NewPresidioMasker(privacy.PresidioConfig{
			AnalyzerURL:   cfg.PresidioAnalyzerURL,
			AnonymizerURL: cfg.PresidioAnonymizerURL,
			Language:      cfg.PIILanguage,
		}, log)
		if err != nil {
			log.Fatal("failed to configure PII masking", zap.Error(err))
		}
		deps.Masker = masker
	} else {
		log.Info("PII masking disabled; set PRESIDIO_ANALYZER_URL and PRESIDIO_ANONYMIZER_URL to enable")
	}

	// LLM optimizer
	if cfg.OptimizerEnabled() {
		gemini, err := optimizer.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiEmbedModel)
		if err != nil {
			log.Fatal("failed to configure gemini client", zap.Error(err))
		}
		deps.Optimizer = optimizer.New(gemini, log)
		log.Info("resume optimizer enabled", zap.String("model", gemini.Model()))
	} else {
		log.Info("resume optimizer disabled; set GEMINI_API_KEY to enable")
	}

	// Retention
	if cfg.RetentionEnabled() {
		pruner := jobs.NewRetentionPruner(database, cfg.RetentionInterval, cfg.RetentionMaxAge, log)
		go pruner.Start(ctx)
	}

	srv := server.New(cfg, log)
	srv.RegisterRoutes(deps)

	go func() {
		if err := srv.Start(); err != nil {
			log.Error("server error", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()

	log.Info("shutting down server")
	if err := srv.Shutdown(); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}
	recorder.Wait()
	log.Info("server exited")
}
