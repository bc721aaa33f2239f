package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fulcitt/fulcitt-api/internal/config"
	domainRepo "github.com/fulcitt/fulcitt-api/internal/domain/repository"
	"github.com/fulcitt/fulcitt-api/internal/presentation/http/handler"
	"github.com/fulcitt/fulcitt-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Sale    *handler.SaleHandler
	Product *handler.ProductHandler
	Layout  *handler.LayoutHandler
	Printer *handler.PrinterHandler
	Report  *handler.ReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerSaleRoutes(v1, h, deps)
		registerProductRoutes(v1, h)
		registerLayoutRoutes(v1, h)
		registerPrinterRoutes(v1, h)
		registerReportRoutes(v1, h)
	}

	return router
}

func registerSaleRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	sales := v1.Group("/sales")
	{
		sales.GET("", h.Sale.List)
		// Sale commits use idempotency middleware so a retried request
		// cannot produce a duplicate sale
		sales.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Sale.Commit)
		sales.GET("/:id", h.Sale.Get)
		sales.POST("/:id/reprint", h.Sale.Reprint)
		sales.PUT("/:id/payment", h.Sale.SetPayment)
	}
}

func registerProductRoutes(v1 *gin.RouterGroup, h *Handlers) {
	products := v1.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Upsert)
		products.GET("/:id", h.Product.Get)
		products.DELETE("/:id", h.Product.Delete)
	}
}

func registerLayoutRoutes(v1 *gin.RouterGroup, h *Handlers) {
	layout := v1.Group("/printing-layout")
	{
		layout.GET("", h.Layout.Get)
		layout.PUT("", h.Layout.Update)
	}
}

func registerPrinterRoutes(v1 *gin.RouterGroup, h *Handlers) {
	printerGroup := v1.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.GetStatus)
		printerGroup.POST("/test", h.Printer.TestPrint)
	}
}

func registerReportRoutes(v1 *gin.RouterGroup, h *Handlers) {
	reports := v1.Group("/reports")
	{
		reports.GET("/sales/export", h.Report.ExportSales)
	}
}
