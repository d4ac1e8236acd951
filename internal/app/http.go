package app

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	httpH "github.com/avenlyn/commerce-backend/internal/http/handlers"
	httpMW "github.com/avenlyn/commerce-backend/internal/http/middleware"
	"github.com/avenlyn/commerce-backend/internal/pkg/logger"
	"github.com/avenlyn/commerce-backend/internal/server"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Health   *httpH.HealthHandler
	Auth     *httpH.AuthHandler
	Customer *httpH.CustomerHandler
	Order    *httpH.OrderHandler
	Product  *httpH.ProductHandler
}

func wireHandlers(log *logger.Logger, db *gorm.DB, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:   httpH.NewHealthHandler(db),
		Auth:     httpH.NewAuthHandler(serviceset.Auth),
		Customer: httpH.NewCustomerHandler(serviceset.Customer),
		Order:    httpH.NewOrderHandler(serviceset.Order),
		Product:  httpH.NewProductHandler(serviceset.Product),
	}
}

func wireMiddleware(log *logger.Logger, serviceset Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, serviceset.Auth),
	}
}

func wireRouter(log *logger.Logger, handlerset Handlers, middlewareset Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		Log:             log,
		AuthMiddleware:  middlewareset.Auth,
		HealthHandler:   handlerset.Health,
		AuthHandler:     handlerset.Auth,
		CustomerHandler: handlerset.Customer,
		OrderHandler:    handlerset.Order,
		ProductHandler:  handlerset.Product,
	})
}
