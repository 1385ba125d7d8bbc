package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/biblia-self-hosted-api/internal/config"
	"github.com/biblia-self-hosted-api/internal/handlers"
	"github.com/biblia-self-hosted-api/internal/middleware"
	"github.com/biblia-self-hosted-api/internal/repository/postgres"
	"github.com/biblia-self-hosted-api/internal/services"
	"github.com/biblia-self-hosted-api/pkg/schema/db"
)

func main() {
	// Load .env file if present
	_ = godotenv.Load()

	// Get configuration
	cfg := config.GetConfig()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSMiddleware())

	// Initialize PostgreSQL
	ctx := context.Background()
	if err := db.InitPostgres(ctx); err != nil {
		log.Fatalf("Failed to initialize PostgreSQL: %v", err)
	}
	log.Println("Database initialization complete")

	// Create repositories
	pgDB := db.GetPostgres()
	verseRepo := postgres.NewVerseRepository(pgDB)
	bookRepo := postgres.NewBookRepository(pgDB)
	versionRepo := postgres.NewVersionRepository(pgDB)
	readingListRepo := postgres.NewReadingListRepository(pgDB)

	// Create services
	bibleSvc := services.NewBibleService(verseRepo, bookRepo, versionRepo)
	readingListSvc := services.NewReadingListService(readingListRepo)

	// Create API group with prefix
	api := e.Group(cfg.APIPrefix)

	// Register handlers
	healthHandler := handlers.NewHealthHandler()
	healthHandler.RegisterRoutes(api)

	bibleHandler := handlers.NewBibleHandler(bibleSvc)
	bibleHandler.RegisterRoutes(api)

	readingListHandler := handlers.NewReadingListHandler(readingListSvc)
	readingListHandler.RegisterRoutes(api)

	// Root health check
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"name":    cfg.APITitle,
			"version": cfg.APIVersion,
			"status":  "running",
		})
	})

	// Start server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Printf("Starting %s v%s on %s", cfg.APITitle, cfg.APIVersion, addr)
		if err := e.Start(addr); err != nil {
			log.Printf("Server stopped: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	if err := db.ClosePostgres(); err != nil {
		log.Printf("Error closing PostgreSQL: %v", err)
	}

	log.Println("Server stopped")
}
