package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/avenlyn/commerce-backend/internal/data/records"
	customerrepo "github.com/avenlyn/commerce-backend/internal/data/repos/customer"
	orderrepo "github.com/avenlyn/commerce-backend/internal/data/repos/order"
	productrepo "github.com/avenlyn/commerce-backend/internal/data/repos/product"
	"github.com/avenlyn/commerce-backend/internal/domain"
	orderagg "github.com/avenlyn/commerce-backend/internal/domain/order"
	"github.com/avenlyn/commerce-backend/internal/domain/valueobject"
	"github.com/avenlyn/commerce-backend/internal/pkg/clock"
	"github.com/avenlyn/commerce-backend/internal/pkg/logger"
	"github.com/avenlyn/commerce-backend/internal/pkg/seqid"
)

type OrderService interface {
	// Place creates a pending order for a customer. A nil createdDate means
	// "now" per the injected clock.
	Place(ctx context.Context, productID, customerID uuid.UUID, createdDate *time.Time) (*orderagg.Order, error)
	Complete(ctx context.Context, id uuid.UUID) (*orderagg.Order, error)
	Cancel(ctx context.Context, id uuid.UUID) (*orderagg.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*orderagg.Order, error)
	List(ctx context.Context, limit, offset int) ([]*orderagg.Order, error)
}

type orderService struct {
	db           *gorm.DB
	log          *logger.Logger
	clk          clock.Clock
	orderRepo    orderrepo.OrderRepo
	customerRepo customerrepo.CustomerRepo
	productRepo  productrepo.ProductRepo
}

func NewOrderService(db *gorm.DB, log *logger.Logger, clk clock.Clock, orderRepo orderrepo.OrderRepo, customerRepo customerrepo.CustomerRepo, productRepo productrepo.ProductRepo) OrderService {
	return &orderService{
		db:           db,
		log:          log.With("service", "OrderService"),
		clk:          clk,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
	}
}

func (s *orderService) Place(ctx context.Context, productID, customerID uuid.UUID, createdDate *time.Time) (*orderagg.Order, error) {
	pid, err := valueobject.NewProductID(productID)
	if err != nil {
		return nil, err
	}
	cid, err := valueobject.NewCustomerID(customerID)
	if err != nil {
		return nil, err
	}

	now := s.clk.Now()
	created := now
	if createdDate != nil {
		created = *createdDate
	}

	var out *orderagg.Order
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.productRepo.Exists(ctx, tx, pid.UUID())
		if err != nil {
			return err
		}
		if !exists {
			return domain.NotFound("product not found")
		}

		c, err := s.customerRepo.GetByID(ctx, tx, cid.UUID())
		if err != nil {
			return err
		}

		o, err := orderagg.New(pid, cid, valueobject.NewOrderDate(created), now)
		if err != nil {
			return err
		}
		if err := c.PlaceOrder(o); err != nil {
			return err
		}
		if err := s.orderRepo.Create(ctx, tx, o); err != nil {
			return err
		}
		if err := s.appendEvent(ctx, tx, o, "order_created", now); err != nil {
			return err
		}
		out = o
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *orderService) Complete(ctx context.Context, id uuid.UUID) (*orderagg.Order, error) {
	return s.transition(ctx, id, "order_completed", func(o *orderagg.Order, now time.Time) error {
		return o.Complete(now)
	})
}

func (s *orderService) Cancel(ctx context.Context, id uuid.UUID) (*orderagg.Order, error) {
	return s.transition(ctx, id, "order_cancelled", func(o *orderagg.Order, now time.Time) error {
		return o.Cancel(now)
	})
}

func (s *orderService) transition(ctx context.Context, id uuid.UUID, eventType string, apply func(*orderagg.Order, time.Time) error) (*orderagg.Order, error) {
	now := s.clk.Now()
	var out *orderagg.Order
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		o, err := s.orderRepo.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := apply(o, now); err != nil {
			return err
		}
		if err := s.orderRepo.Update(ctx, tx, o); err != nil {
			return err
		}
		if err := s.appendEvent(ctx, tx, o, eventType, now); err != nil {
			return err
		}
		out = o
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *orderService) appendEvent(ctx context.Context, tx *gorm.DB, o *orderagg.Order, eventType string, at time.Time) error {
	payload, err := json.Marshal(map[string]any{
		"order_id":    o.ID().String(),
		"product_id":  o.ProductID().String(),
		"customer_id": o.CustomerID().String(),
		"status":      string(o.Status()),
	})
	if err != nil {
		return err
	}
	return s.orderRepo.AppendEvent(ctx, tx, &records.OrderEvent{
		ID:        seqid.New(),
		OrderID:   o.ID().UUID(),
		Type:      eventType,
		Payload:   datatypes.JSON(payload),
		CreatedAt: at,
	})
}

func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (*orderagg.Order, error) {
	return s.orderRepo.GetByID(ctx, nil, id)
}

func (s *orderService) List(ctx context.Context, limit, offset int) ([]*orderagg.Order, error) {
	return s.orderRepo.GetPage(ctx, nil, limit, offset)
}
