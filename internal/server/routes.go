package server

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"clauselens/internal/analyzer"
	"clauselens/internal/db"
	"clauselens/internal/dictionary"
	"clauselens/internal/email"
	"clauselens/internal/handlers"
	"clauselens/internal/handlers/api"
	"clauselens/internal/middleware"
	"clauselens/internal/models"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(ctx context.Context, database *db.DB, pipeline *analyzer.Pipeline, defaults *models.KeywordTable, emailSvc *email.Service, dict *dictionary.Client) error {
	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(s.Cfg)

	// Initialize handlers
	analyzeHandler := handlers.NewAnalyzeHandler(database, s.Cfg, pipeline, defaults)
	analysisHandler := handlers.NewAnalysisHandler(database, s.Cfg, defaults)
	keywordHandler := handlers.NewKeywordHandler(s.Cfg, defaults)
	exportHandler := handlers.NewExportHandler(database, s.Cfg, emailSvc)
	defineHandler := handlers.NewDefineHandler(s.Cfg, defaults, dict)
	probeHandler := handlers.NewProbeHandler(database)

	// Probes and metrics are never behind auth
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Auth routes. OIDC is optional; without an issuer the app runs open.
	if s.Cfg.OIDCIssuer != "" {
		authHandler, err := handlers.NewAuthHandler(ctx, s.Cfg)
		if err != nil {
			return err
		}

		s.App.Get("/auth/login", authHandler.Login)
		s.App.Get("/auth/callback", authHandler.Callback)
		s.App.Get("/auth/logout", authHandler.Logout)
		s.App.Get("/login", func(c fiber.Ctx) error {
			return c.Render("login", handlers.MergeBranding(fiber.Map{
				"Title": "Sign in",
			}, s.Cfg))
		})
	} else {
		log.Println("OIDC not configured, running without authentication")
	}

	// Frontend routes
	s.App.Get("/", authMiddleware.RequireAuth, analyzeHandler.Index)
	s.App.Post("/analyze", authMiddleware.RequireAuth, analyzeHandler.Analyze)

	s.App.Get("/analyses", authMiddleware.RequireAuth, analysisHandler.List)
	s.App.Get("/analyses/:id", authMiddleware.RequireAuth, analysisHandler.Show)
	s.App.Get("/analyses/:id/search", authMiddleware.RequireAuth, analysisHandler.Search)
	s.App.Delete("/analyses/:id", authMiddleware.RequireAuth, analysisHandler.Delete)

	s.App.Get("/analyses/:id/export.pdf", authMiddleware.RequireAuth, exportHandler.PDF)
	s.App.Get("/analyses/:id/export.json", authMiddleware.RequireAuth, exportHandler.JSON)
	s.App.Post("/analyses/:id/email", authMiddleware.RequireAuth, exportHandler.Email)

	s.App.Get("/keywords", authMiddleware.RequireAuth, keywordHandler.Show)
	s.App.Post("/keywords", authMiddleware.RequireAuth, keywordHandler.Upsert)
	s.App.Delete("/keywords/:phrase", authMiddleware.RequireAuth, keywordHandler.Delete)
	s.App.Post("/keywords/reset", authMiddleware.RequireAuth, keywordHandler.Reset)

	s.App.Get("/define", authMiddleware.RequireAuth, defineHandler.Define)

	// JSON API
	apiAnalysisHandler := api.NewAnalysisHandler(database, s.Cfg, pipeline, defaults)
	apiKeywordHandler := api.NewKeywordHandler(s.Cfg, defaults)
	apiDefineHandler := api.NewDefineHandler(s.Cfg, defaults, dict)

	v1 := s.App.Group("/api/v1", authMiddleware.OptionalAuth)
	v1.Post("/analyses", apiAnalysisHandler.Create)
	v1.Get("/analyses", apiAnalysisHandler.List)
	v1.Get("/analyses/:id", apiAnalysisHandler.Get)
	v1.Delete("/analyses/:id", apiAnalysisHandler.Delete)

	v1.Get("/keywords", apiKeywordHandler.List)
	v1.Post("/keywords", apiKeywordHandler.Upsert)
	v1.Delete("/keywords/:phrase", apiKeywordHandler.Delete)
	v1.Post("/keywords/reset", apiKeywordHandler.Reset)

	v1.Get("/define", apiDefineHandler.Define)

	return nil
}
