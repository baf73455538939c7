package router

import (
	"time"

	"github.com/cedricmorin1/Ordermanagement/internal/config"
	"github.com/cedricmorin1/Ordermanagement/internal/handler"
	"github.com/cedricmorin1/Ordermanagement/internal/middleware"
	"github.com/cedricmorin1/Ordermanagement/internal/repository"
	"github.com/cedricmorin1/Ordermanagement/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMinute, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	catalogRepo := repository.NewCatalogRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	catalogSvc := service.NewCatalogService(catalogRepo)
	orderSvc := service.NewOrderService(orderRepo)
	progressSvc := service.NewProgressService(orderRepo)
	summarySvc := service.NewSummaryService(orderRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	catalogH := handler.NewCatalogHandler(catalogSvc)
	ordersH := handler.NewOrdersHandler(orderSvc)
	summaryH := handler.NewSummaryHandler(summarySvc, progressSvc)
	planningH := handler.NewPlanningHandler(time.Now)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db))

	api := r.Group("/api")
	{
		products := api.Group("/admin-products")
		{
			products.GET("", catalogH.List)
			products.POST("", catalogH.Create)
			products.PUT("/:id", catalogH.Update)
			products.DELETE("/:id", catalogH.Delete)
			products.POST("/import", catalogH.Import)
		}

		orders := api.Group("/orders")
		{
			orders.GET("", ordersH.List)
			orders.POST("", ordersH.Create)
			orders.PUT("/:id", ordersH.Update)
			orders.DELETE("/:id", ordersH.Delete)
			orders.PATCH("/:id/products/:itemId", ordersH.SetProduced)
		}

		api.GET("/stats", summaryH.Stats)

		summary := api.Group("/summary")
		{
			summary.GET("", summaryH.Summary)
			summary.POST("/complete", summaryH.Complete)
			summary.POST("/reset", summaryH.Reset)
			summary.POST("/quantity", summaryH.SetQuantity)
		}

		weeks := api.Group("/weeks")
		{
			weeks.GET("", planningH.Weeks)
			weeks.GET("/delivery-date", planningH.DeliveryDate)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
