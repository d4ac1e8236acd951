package app

import (
	"gorm.io/gorm"

	rediscache "github.com/avenlyn/commerce-backend/internal/clients/redis"
	"github.com/avenlyn/commerce-backend/internal/pkg/clock"
	"github.com/avenlyn/commerce-backend/internal/pkg/logger"
	"github.com/avenlyn/commerce-backend/internal/services"
)

type Services struct {
	Auth     services.AuthService
	Customer services.CustomerService
	Order    services.OrderService
	Product  services.ProductService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos, cache rediscache.Cache) Services {
	log.Info("Wiring services...")
	return Services{
		Auth:     services.NewAuthService(db, log, repos.User, repos.UserToken, cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL),
		Customer: services.NewCustomerService(db, log, repos.Customer),
		Order:    services.NewOrderService(db, log, clock.System(), repos.Order, repos.Customer, repos.Product),
		Product:  services.NewProductService(db, log, repos.Product, cache),
	}
}
