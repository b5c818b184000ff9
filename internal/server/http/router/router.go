package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/venkateswarareddychalla/eatoes/internal/server/http/handlers"
	"github.com/venkateswarareddychalla/eatoes/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.RestaurantFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	menuHandler := handlers.NewMenuHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	analyticsHandler := handlers.NewAnalyticsHandler(facade)

	engine.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	api := engine.Group("/api")

	menu := api.Group("/menu")
	menu.GET("", menuHandler.List)
	menu.GET("/search", menuHandler.Search)
	menu.GET("/:id", menuHandler.Get)
	menu.POST("", menuHandler.Create)
	menu.PUT("/:id", menuHandler.Update)
	menu.DELETE("/:id", menuHandler.Delete)
	menu.PATCH("/:id/availability", menuHandler.ToggleAvailability)

	orders := api.Group("/orders")
	orders.GET("", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)
	orders.POST("", orderHandler.Create)
	orders.PATCH("/:id/status", orderHandler.UpdateStatus)

	analytics := api.Group("/analytics")
	analytics.GET("/top-sellers", analyticsHandler.TopSellers)
	analytics.GET("/stats", analyticsHandler.Stats)

	return engine
}
