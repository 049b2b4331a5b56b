package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"atsmatch/internal/handlers/api"
	"atsmatch/internal/keywords"
	"atsmatch/internal/middleware"
	"atsmatch/internal/privacy"
)

// Store is the optional analysis storage seen by the HTTP layer.
type Store interface {
	api.Pinger
	api.LabelCounter
}

// Deps are the collaborators injected into the handlers. Nil optional
// collaborators disable their endpoints.
type Deps struct {
	Analyzer  *keywords.Analyzer
	Recorder  api.AnalysisRecorder
	Masker    privacy.Masker
	Optimizer api.ResumeOptimizer
	Store     Store
	Gatherer  prometheus.Gatherer
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(deps Deps) {
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}

	// Probes and scrapes bypass the API key
	apiKey := middleware.NewAPIKeyMiddleware(s.Cfg.APIKey, "/health", "/metrics")
	if apiKey.Enabled() {
		s.log.Info("API key required for analysis endpoints")
	}
	s.App.Use(apiKey.RequireKey)

	analyzeHandler := api.NewAnalyzeHandler(deps.Analyzer, deps.Recorder, s.log)
	optimizeHandler := api.NewOptimizeHandler(deps.Masker, deps.Optimizer, s.log)

	healthHandler := api.NewHealthHandler(deps.Store)
	statsHandler := api.NewStatsHandler(deps.Store)

	// Scoring
	s.App.Post("/analyze", analyzeHandler.AnalyzePDF)
	s.App.Post("/analyze/text", analyzeHandler.AnalyzeText)

	// Privacy and LLM-backed optimization
	s.App.Post("/optimize/sanitize", optimizeHandler.Sanitize)
	s.App.Post("/optimize/bullet", optimizeHandler.Bullet)
	s.App.Post("/optimize/skill-gap", optimizeHandler.SkillGap)

	// Operations
	s.App.Get("/health", healthHandler.Check)
	s.App.Get("/stats", statsHandler.Get)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
}
