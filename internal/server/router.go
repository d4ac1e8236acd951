package server

import (
	"github.com/gin-gonic/gin"

	"github.com/avenlyn/commerce-backend/internal/http/handlers"
	"github.com/avenlyn/commerce-backend/internal/http/middleware"
	"github.com/avenlyn/commerce-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log             *logger.Logger
	AuthMiddleware  *middleware.AuthMiddleware
	HealthHandler   *handlers.HealthHandler
	AuthHandler     *handlers.AuthHandler
	CustomerHandler *handlers.CustomerHandler
	OrderHandler    *handlers.OrderHandler
	ProductHandler  *handlers.ProductHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestLogger(cfg.Log))

	// Public
	router.GET("/healthcheck", cfg.HealthHandler.Check)
	api := router.Group("/api")
	{
		api.POST("/register", cfg.AuthHandler.Register)
		api.POST("/login", cfg.AuthHandler.Login)
	}

	// Protected
	protected := api.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())

	protected.POST("/auth/refresh", cfg.AuthHandler.Refresh)
	protected.POST("/auth/logout", cfg.AuthHandler.Logout)

	protected.POST("/customers", cfg.CustomerHandler.Create)
	protected.GET("/customers", cfg.CustomerHandler.List)
	protected.GET("/customers/:id", cfg.CustomerHandler.GetByID)
	protected.PATCH("/customers/:id/first_name", cfg.CustomerHandler.ChangeFirstName)
	protected.PATCH("/customers/:id/last_name", cfg.CustomerHandler.ChangeLastName)
	protected.PATCH("/customers/:id/phone_number", cfg.CustomerHandler.ChangePhoneNumber)
	protected.PATCH("/customers/:id/email", cfg.CustomerHandler.ChangeEmail)

	protected.POST("/orders", cfg.OrderHandler.Place)
	protected.GET("/orders", cfg.OrderHandler.List)
	protected.GET("/orders/:id", cfg.OrderHandler.GetByID)
	protected.POST("/orders/:id/complete", cfg.OrderHandler.Complete)
	protected.POST("/orders/:id/cancel", cfg.OrderHandler.Cancel)

	protected.POST("/products", cfg.ProductHandler.Create)
	protected.GET("/products", cfg.ProductHandler.List)
	protected.GET("/products/:id", cfg.ProductHandler.GetByID)
	protected.PATCH("/products/:id/name", cfg.ProductHandler.ChangeName)
	protected.PATCH("/products/:id/description", cfg.ProductHandler.ChangeDescription)
	protected.PATCH("/products/:id/sku", cfg.ProductHandler.ChangeSKU)

	return router
}
