package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sentiment-gateway/internal/config"
	"sentiment-gateway/internal/handlers"
	"sentiment-gateway/internal/router"
	"sentiment-gateway/internal/services"
)

func main() {
	log.Println("🚀 Starting Sentiment Gateway...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Select AI Service ────
	var aiService interface {
		Classify(ctx context.Context, message string) (string, error)
		Chat(ctx context.Context, message string) (string, error)
	}
	if cfg.Offline {
		aiService = services.NewOfflineService()
		log.Println("⚠ No GEMINI_API_KEY configured — running in offline mode with local heuristics")
	} else {
		aiService = services.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL)
		log.Printf("✓ Gemini client initialized (model: %s)", cfg.GeminiModel)
	}

	// ──── Step 3: Initialize Handlers ────
	sentimentHandler := handlers.NewSentimentHandler(aiService)
	chatHandler := handlers.NewChatHandler(aiService)

	// ──── Step 4: Start HTTP Server ────
	r := router.New(sentimentHandler, chatHandler, cfg.FrontendURL)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Sentiment Gateway ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
