package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"clauselens/internal/analyzer"
	"clauselens/internal/config"
	"clauselens/internal/db"
	"clauselens/internal/dictionary"
	"clauselens/internal/email"
	"clauselens/internal/metrics"
	"clauselens/internal/server"
	"clauselens/internal/summarizer"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	// Register Prometheus collectors
	metrics.Init(database)

	// Load the default keyword table (built-in defaults plus the
	// optional KEYWORDS_FILE overlay)
	defaults, err := config.LoadKeywordTable()
	if err != nil {
		log.Fatalf("Failed to load keyword table: %v", err)
	}
	log.Printf("Loaded keyword table with %d entries", defaults.Len())

	// Analysis pipeline. Without a configured summarizer endpoint the
	// pipeline falls back to excerpts.
	var llm analyzer.Summarizer
	if client := summarizer.New(cfg); client != nil {
		llm = client
	} else {
		log.Println("Summarizer not configured, using excerpt fallback")
	}
	pipeline := analyzer.New(llm)

	dict := dictionary.New(cfg.DictionaryBaseURL)
	emailSvc := email.NewService(cfg)

	// Initialize server and routes
	srv := server.New(cfg)
	if err := srv.RegisterRoutes(ctx, database, pipeline, defaults, emailSvc, dict); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
