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

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/content"
	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/router"
	"portfolio-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting Portfolio Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize Gemini Client ────
	profile := content.Default()
	geminiService, err := services.NewGeminiService(cfg.GeminiAPIKey, profile, cfg.ChatIncludeHistory)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer geminiService.Close()
	log.Println("✓ Gemini Flash client initialized")

	// ──── Step 3: Initialize Services ────
	emailService := services.NewEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)

	// ──── Step 4: Initialize Handlers ────
	chatHandler := handlers.NewChatHandler(geminiService)
	contactHandler := handlers.NewContactHandler(emailService, cfg.ContactEmail)

	// ──── Step 5: Start HTTP Server ────
	r := router.New(chatHandler, contactHandler, cfg.AllowedOrigin)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// Long enough for a full streamed completion; chat responses are
		// written incrementally and must not be cut off mid-stream.
		WriteTimeout: 2 * time.Minute,
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

	log.Printf("✓ Portfolio Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  Chat:    POST http://localhost:%s/api/chat", cfg.Port)
	log.Printf("  Contact: POST http://localhost:%s/api/contact", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
