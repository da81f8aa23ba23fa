package main

import (
	"fmt"
	"log"
	"os"

	"github.com/labelcheck/backend/config"
	httpDelivery "github.com/labelcheck/backend/internal/delivery/http"
	"github.com/labelcheck/backend/internal/infrastructure/cache"
	"github.com/labelcheck/backend/internal/infrastructure/tesseract"
	"github.com/labelcheck/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting LabelCheck Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	// Initialize infrastructure dependencies
	textCache := cache.NewMemoryCache()

	ocrEngine := tesseract.NewEngine(tesseract.Config{
		Languages:   cfg.OCR.Languages,
		PageSegMode: cfg.OCR.PageSegMode,
	})

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		ocrEngine.SetDebug(true)
		log.Printf("OCR engine debug mode enabled")
	}

	log.Printf("OCR: languages=%v, page_seg_mode=%d, min_text_length=%d",
		cfg.OCR.Languages, cfg.OCR.PageSegMode, cfg.OCR.MinTextLength)

	// Initialize usecase layer
	verificationService := usecase.NewVerificationService(
		textCache,
		ocrEngine,
		usecase.VerificationServiceConfig{
			CacheTTL:      cfg.Cache.TTL,
			MinTextLength: cfg.OCR.MinTextLength,
			Matching: usecase.MatchConfig{
				EnableDebugLogging: cfg.Matching.EnableDebugLogging,
			},
			EnableDebugLogging: cfg.Matching.EnableDebugLogging,
		},
	)

	if cfg.RateLimit.PerMinute > 0 {
		log.Printf("Rate limit: %d req/min (burst %d)", cfg.RateLimit.PerMinute, cfg.RateLimit.Burst)
	} else {
		log.Printf("Rate limiting disabled")
	}

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(verificationService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
