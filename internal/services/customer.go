package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	customerrepo "github.com/avenlyn/commerce-backend/internal/data/repos/customer"
	"github.com/avenlyn/commerce-backend/internal/domain"
	customeragg "github.com/avenlyn/commerce-backend/internal/domain/customer"
	"github.com/avenlyn/commerce-backend/internal/domain/valueobject"
	"github.com/avenlyn/commerce-backend/internal/pkg/logger"
)

type CustomerService interface {
	Create(ctx context.Context, firstName, lastName, phone, email string) (*customeragg.Customer, error)
	ChangeFirstName(ctx context.Context, id uuid.UUID, raw string) (*customeragg.Customer, error)
	ChangeLastName(ctx context.Context, id uuid.UUID, raw string) (*customeragg.Customer, error)
	ChangePhoneNumber(ctx context.Context, id uuid.UUID, raw string) (*customeragg.Customer, error)
	ChangeEmail(ctx context.Context, id uuid.UUID, raw string) (*customeragg.Customer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*customeragg.Customer, error)
	List(ctx context.Context, limit, offset int) ([]*customeragg.Customer, error)
}

type customerService struct {
	db           *gorm.DB
	log          *logger.Logger
	customerRepo customerrepo.CustomerRepo
}

func NewCustomerService(db *gorm.DB, log *logger.Logger, repo customerrepo.CustomerRepo) CustomerService {
	return &customerService{
		db:           db,
		log:          log.With("service", "CustomerService"),
		customerRepo: repo,
	}
}

func (s *customerService) Create(ctx context.Context, firstName, lastName, phone, email string) (*customeragg.Customer, error) {
	first, err := valueobject.NewFirstName(firstName)
	if err != nil {
		return nil, err
	}
	last, err := valueobject.NewLastName(lastName)
	if err != nil {
		return nil, err
	}
	phoneNumber, err := valueobject.NewPhoneNumber(phone)
	if err != nil {
		return nil, err
	}
	address, err := valueobject.NewEmail(email)
	if err != nil {
		return nil, err
	}

	c, err := customeragg.New(first, last, phoneNumber, address)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.customerRepo.EmailExists(ctx, tx, address.String())
		if err != nil {
			return err
		}
		if exists {
			return domain.Conflict("email already registered")
		}
		return s.customerRepo.Create(ctx, tx, c)
	}); err != nil {
		return nil, err
	}
	return c, nil
}

// change runs a single-field mutation inside a transaction: load, mutate,
// persist.
func (s *customerService) change(ctx context.Context, id uuid.UUID, mutate func(*customeragg.Customer) error) (*customeragg.Customer, error) {
	var out *customeragg.Customer
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		c, err := s.customerRepo.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := mutate(c); err != nil {
			return err
		}
		if err := s.customerRepo.Update(ctx, tx, c); err != nil {
			return err
		}
		out = c
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *customerService) ChangeFirstName(ctx context.Context, id uuid.UUID, raw string) (*customeragg.Customer, error) {
	v, err := valueobject.NewFirstName(raw)
	if err != nil {
		return nil, err
	}
	return s.change(ctx, id, func(c *customeragg.Customer) error {
		return c.ChangeFirstName(v)
	})
}

func (s *customerService) ChangeLastName(ctx context.Context, id uuid.UUID, raw string) (*customeragg.Customer, error) {
	v, err := valueobject.NewLastName(raw)
	if err != nil {
		return nil, err
	}
	return s.change(ctx, id, func(c *customeragg.Customer) error {
		return c.ChangeLastName(v)
	})
}

func (s *customerService) ChangePhoneNumber(ctx context.Context, id uuid.UUID, raw string) (*customeragg.Customer, error) {
	v, err := valueobject.NewPhoneNumber(raw)
	if err != nil {
		return nil, err
	}
	return s.change(ctx, id, func(c *customeragg.Customer) error {
		return c.ChangePhoneNumber(v)
	})
}

func (s *customerService) ChangeEmail(ctx context.Context, id uuid.UUID, raw string) (*customeragg.Customer, error) {
	v, err := valueobject.NewEmail(raw)
	if err != nil {
		return nil, err
	}
	return s.change(ctx, id, func(c *customeragg.Customer) error {
		return c.ChangeEmail(v)
	})
}

func (s *customerService) GetByID(ctx context.Context, id uuid.UUID) (*customeragg.Customer, error) {
	return s.customerRepo.GetByID(ctx, nil, id)
}

func (s *customerService) List(ctx context.Context, limit, offset int) ([]*customeragg.Customer, error) {
	return s.customerRepo.GetPage(ctx, nil, limit, offset)
}
