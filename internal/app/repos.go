package app

import (
	"gorm.io/gorm"

	customerrepo "github.com/avenlyn/commerce-backend/internal/data/repos/customer"
	orderrepo "github.com/avenlyn/commerce-backend/internal/data/repos/order"
	productrepo "github.com/avenlyn/commerce-backend/internal/data/repos/product"
	userrepo "github.com/avenlyn/commerce-backend/internal/data/repos/user"
	"github.com/avenlyn/commerce-backend/internal/pkg/logger"
)

type Repos struct {
	Customer  customerrepo.CustomerRepo
	Order     orderrepo.OrderRepo
	Product   productrepo.ProductRepo
	User      userrepo.UserRepo
	UserToken userrepo.UserTokenRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Customer:  customerrepo.NewCustomerRepo(db, log),
		Order:     orderrepo.NewOrderRepo(db, log),
		Product:   productrepo.NewProductRepo(db, log),
		User:      userrepo.NewUserRepo(db, log),
		UserToken: userrepo.NewUserTokenRepo(db, log),
	}
}
