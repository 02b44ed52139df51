package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cashflow/internal/config"
	"cashflow/internal/database"
	"cashflow/internal/logger"
	"cashflow/internal/middleware"
	"cashflow/internal/router"
	"cashflow/internal/scheduler"
	"cashflow/internal/services"
	"cashflow/internal/validator"
)

// @title           Cashflow Steps API
// @version         1.0
// @description     Cashflow Steps is a turn-based personal finance game: collect income, weather events and buy offers until passive income covers fixed expenses.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig(appConfig)
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("failed to close database: %v", err)
		}
	}()

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	catalogService, err := services.NewCatalogService(appConfig.CatalogDir)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	store := services.NewSessionStore()
	snapshotService := services.NewSnapshotService(db)
	gameService := services.NewGameService(store, catalogService, snapshotService, appConfig.LogTail)
	saveService := services.NewSaveService(db, store, appConfig.LogTail)
	auditService := services.NewAuditService(db)

	if appConfig.AdminAPIKey == "" {
		log.Warn("ADMIN_API_KEY is not set, admin endpoints are disabled")
	}

	engine := router.New(router.Deps{
		Games:       gameService,
		Catalogs:    catalogService,
		Saves:       saveService,
		Snapshots:   snapshotService,
		Audit:       auditService,
		Tokens:      middleware.NewSessionTokens(appConfig.SessionSecret, appConfig.SessionTTL),
		AdminAPIKey: appConfig.AdminAPIKey,
	})

	// Evict idle sessions in the background
	sweeper := scheduler.NewScheduler(store, appConfig.SessionIdleTimeout)
	if err := sweeper.Register(appConfig.SessionSweepCron); err != nil {
		return err
	}
	sweeper.Start()
	defer sweeper.Stop()

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting Cashflow Steps server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}
