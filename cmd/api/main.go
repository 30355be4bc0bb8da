// cmd/api/main.go

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"tagscope/internal/config"
	"tagscope/internal/domain/post"
	"tagscope/internal/server"
	"tagscope/internal/server/handlers"
	analysisService "tagscope/internal/service/analysis"
	"tagscope/internal/service/sentiment"
	"tagscope/internal/service/social"
	"tagscope/internal/service/text"
	"tagscope/internal/service/translate"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Load stopword sets eagerly, one per supported language
	stopwords, err := text.LoadStopwords(cfg.Analysis.StopwordDir, post.AllLanguages, post.LanguageEnglish)
	if err != nil {
		log.Fatalf("Failed to load stopwords: %v", err)
	}

	// Initialize services
	fetcher := social.NewClient(cfg.Twitter.BearerToken, &http.Client{Timeout: cfg.Twitter.Timeout})
	engine := analysisService.NewEngine(stopwords, cfg.Analysis.TopWords)
	translator := translate.NewClient(cfg.Translate.URL, cfg.Translate.APIKey, cfg.Translate.Timeout)

	// Use the remote polarity model when configured, the built-in lexicon otherwise
	var model sentiment.Model
	if cfg.Sentiment.URL != "" {
		model = sentiment.NewRemote(cfg.Sentiment.URL, cfg.Sentiment.Timeout)
	} else {
		model = sentiment.NewLexicon()
	}
	scorer := sentiment.NewScorer(translator, model)

	// Initialize HTTP server
	analysisHandler := handlers.NewAnalysisHandler(fetcher, engine, scorer, handlers.Defaults{
		MaxResults:   cfg.Analysis.MaxResults,
		LookbackDays: cfg.Analysis.LookbackDays,
	})
	httpServer := server.NewServer(cfg.Server, analysisHandler)

	// Start HTTP server
	go func() {
		log.Printf("Starting HTTP server on %s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-shutdown
	log.Println("Shutdown signal received")

	// Create shutdown context with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	// Graceful shutdown
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("Shutdown complete")
}
