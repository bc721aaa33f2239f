package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fulcitt/fulcitt-api/internal/application/service"
	"github.com/fulcitt/fulcitt-api/internal/config"
	"github.com/fulcitt/fulcitt-api/internal/infrastructure/database"
	"github.com/fulcitt/fulcitt-api/internal/infrastructure/repository"
	"github.com/fulcitt/fulcitt-api/internal/presentation/http/handler"
	"github.com/fulcitt/fulcitt-api/internal/presentation/http/routes"
	"github.com/fulcitt/fulcitt-api/pkg/printer"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Purge expired idempotency keys hourly
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := idempotencyRepo.DeleteExpired(context.Background()); err != nil {
				log.Printf("Warning: Failed to delete expired idempotency keys: %v", err)
			}
		}
	}()

	// Initialize printer transport
	transport, err := printer.NewTransportFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer transport: %v", err)
		transport = printer.NewNullTransport()
	}
	driver := printer.NewDriver(transport)

	// Initialize services
	saleService := service.NewSaleService(saleRepo, productRepo)
	layoutService := service.NewLayoutService(settingsRepo)
	printingService := service.NewPrintingService(driver, cfg.Printer.Type, saleService, layoutService, productRepo)
	productService := service.NewProductService(productRepo)
	exportService := service.NewExportService(saleRepo, cfg.Export.Dir)

	// Initialize handlers
	handlers := &routes.Handlers{
		Sale:    handler.NewSaleHandler(saleService, printingService),
		Product: handler.NewProductHandler(productService),
		Layout:  handler.NewLayoutHandler(layoutService),
		Printer: handler.NewPrinterHandler(printingService),
		Report:  handler.NewReportHandler(exportService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)
	log.Printf("Printer transport: %s", cfg.Printer.Type)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
