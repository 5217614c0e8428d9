package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"playday/internal/config"
	"playday/internal/database"
	"playday/internal/handlers"
	"playday/internal/repository"
	"playday/internal/security"
	"playday/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// Initialize database (supports sqlite, postgres, mysql)
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Initialize repositories
	playerRepo := repository.NewPlayerRepository(db)
	wordSetRepo := repository.NewWordSetRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Initialize services
	alertService, err := service.NewAlertService(cfg.AWSRegion, cfg.AlertFrom, cfg.AlertTo, cfg.AlertsEnabled)
	if err != nil {
		log.Fatalf("Failed to initialize alert service: %v", err)
	}

	puzzleService, err := service.NewPuzzleService(playerRepo, wordSetRepo, alertService)
	if err != nil {
		log.Fatalf("Failed to initialize puzzle service: %v", err)
	}

	tokens := security.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(adminRepo, tokens)
	adminService := service.NewAdminService(playerRepo, wordSetRepo, puzzleService)
	analyticsService := service.NewAnalyticsService(analyticsRepo)

	// Create the initial admin account when none exist
	if err := authService.EnsureBootstrapAdmin(cfg.AdminEmail, cfg.AdminPassword, cfg.AdminName); err != nil {
		log.Printf("Warning: failed to create bootstrap admin: %v", err)
	}

	// Initialize handlers
	loginLimiter := security.NewRateLimiter(10, time.Minute)
	middleware := handlers.NewMiddleware(authService, loginLimiter)
	puzzleHandler := handlers.NewPuzzleHandler(puzzleService)
	authHandler := handlers.NewAuthHandler(authService)
	adminHandler := handlers.NewAdminHandler(adminService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// Setup routes
	mux := http.NewServeMux()

	// Public game routes
	mux.HandleFunc("GET /api/games/squaddle/daily", puzzleHandler.Squaddle)
	mux.HandleFunc("GET /api/games/oddoneout/daily", puzzleHandler.OddOneOut)
	mux.HandleFunc("GET /api/games/sequence/daily", puzzleHandler.Sequence)
	mux.HandleFunc("POST /api/events", analyticsHandler.RecordEvent)

	// Admin routes
	mux.HandleFunc("POST /api/admin/login", middleware.RateLimit(authHandler.Login))
	mux.HandleFunc("GET /api/admin/players", middleware.RequireAdmin(adminHandler.ListPlayers))
	mux.HandleFunc("POST /api/admin/players", middleware.RequireAdmin(adminHandler.CreatePlayer))
	mux.HandleFunc("GET /api/admin/players/{id}", middleware.RequireAdmin(adminHandler.GetPlayer))
	mux.HandleFunc("PUT /api/admin/players/{id}", middleware.RequireAdmin(adminHandler.UpdatePlayer))
	mux.HandleFunc("DELETE /api/admin/players/{id}", middleware.RequireAdmin(adminHandler.DeletePlayer))
	mux.HandleFunc("GET /api/admin/wordsets", middleware.RequireAdmin(adminHandler.ListWordSets))
	mux.HandleFunc("POST /api/admin/wordsets", middleware.RequireAdmin(adminHandler.CreateWordSet))
	mux.HandleFunc("GET /api/admin/wordsets/{id}", middleware.RequireAdmin(adminHandler.GetWordSet))
	mux.HandleFunc("PUT /api/admin/wordsets/{id}", middleware.RequireAdmin(adminHandler.UpdateWordSet))
	mux.HandleFunc("DELETE /api/admin/wordsets/{id}", middleware.RequireAdmin(adminHandler.DeleteWordSet))
	mux.HandleFunc("POST /api/admin/bulk", middleware.RequireAdmin(adminHandler.BulkImport))
	mux.HandleFunc("GET /api/admin/preview", middleware.RequireAdmin(adminHandler.Preview))
	mux.HandleFunc("GET /api/admin/analytics", middleware.RequireAdmin(analyticsHandler.Summary))

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
}
