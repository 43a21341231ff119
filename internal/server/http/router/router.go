package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/staybook/internal/server/http/handlers"
	"github.com/polkiloo/staybook/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.Facade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	propertyHandler := handlers.NewPropertyHandler(facade)
	bookingHandler := handlers.NewBookingHandler(facade)
	historyHandler := handlers.NewHistoryHandler(facade)

	api := engine.Group("/api")
	users := api.Group("/users")
	users.POST("/register", authHandler.Register)
	users.POST("/login", authHandler.Login)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.GET("/properties", propertyHandler.List)
	authed.GET("/properties/:id", propertyHandler.Get)
	authed.POST("/bookings", bookingHandler.Create)
	authed.GET("/bookings", bookingHandler.List)
	authed.POST("/bookings/:id/checkout", bookingHandler.Checkout)
	authed.POST("/bookings/:id/payments", bookingHandler.Pay)
	authed.GET("/history", historyHandler.Get)

	return engine
}
