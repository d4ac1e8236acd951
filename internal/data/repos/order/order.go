package order

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/avenlyn/commerce-backend/internal/data/records"
	"github.com/avenlyn/commerce-backend/internal/domain"
	orderagg "github.com/avenlyn/commerce-backend/internal/domain/order"
	"github.com/avenlyn/commerce-backend/internal/domain/valueobject"
	"github.com/avenlyn/commerce-backend/internal/pkg/logger"
)

type OrderRepo interface {
	Create(ctx context.Context, tx *gorm.DB, o *orderagg.Order) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*orderagg.Order, error)
	GetPage(ctx context.Context, tx *gorm.DB, limit, offset int) ([]*orderagg.Order, error)
	Update(ctx context.Context, tx *gorm.DB, o *orderagg.Order) error
	AppendEvent(ctx context.Context, tx *gorm.DB, ev *records.OrderEvent) error
}

type orderRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOrderRepo(db *gorm.DB, baseLog *logger.Logger) OrderRepo {
	return &orderRepo{db: db, log: baseLog.With("repo", "OrderRepo")}
}

// ToRecord flattens an order aggregate into its row form.
func ToRecord(o *orderagg.Order) records.Order {
	rec := records.Order{
		ID:          o.ID().UUID(),
		ProductID:   o.ProductID().UUID(),
		CustomerID:  o.CustomerID().UUID(),
		Status:      string(o.Status()),
		CreatedDate: o.CreatedDate().Time(),
	}
	if d := o.UpdatedDate(); d != nil {
		t := d.Time()
		rec.UpdatedDate = &t
	}
	return rec
}

// Rehydrate rebuilds the aggregate from a row, pushing every stored value
// back through its constructor so a row that no longer satisfies the domain
// rules fails loudly instead of producing an invalid order.
func Rehydrate(rec records.Order) (*orderagg.Order, error) {
	id, err := valueobject.NewOrderID(rec.ID)
	if err != nil {
		return nil, err
	}
	productID, err := valueobject.NewProductID(rec.ProductID)
	if err != nil {
		return nil, err
	}
	customerID, err := valueobject.NewCustomerID(rec.CustomerID)
	if err != nil {
		return nil, err
	}
	var updated *valueobject.OrderDate
	if rec.UpdatedDate != nil {
		d := valueobject.NewOrderDate(*rec.UpdatedDate)
		updated = &d
	}
	return orderagg.Rehydrate(id, productID, customerID, orderagg.Status(rec.Status), valueobject.NewOrderDate(rec.CreatedDate), updated)
}

func (r *orderRepo) Create(ctx context.Context, tx *gorm.DB, o *orderagg.Order) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	rec := ToRecord(o)
	return transaction.WithContext(ctx).Create(&rec).Error
}

func (r *orderRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*orderagg.Order, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var rec records.Order
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("order not found")
		}
		return nil, err
	}
	return Rehydrate(rec)
}

func (r *orderRepo) GetPage(ctx context.Context, tx *gorm.DB, limit, offset int) ([]*orderagg.Order, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if limit <= 0 {
		limit = 50
	}
	var recs []records.Order
	if err := transaction.WithContext(ctx).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]*orderagg.Order, 0, len(recs))
	for _, rec := range recs {
		o, err := Rehydrate(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *orderRepo) Update(ctx context.Context, tx *gorm.DB, o *orderagg.Order) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	rec := ToRecord(o)
	return transaction.WithContext(ctx).
		Model(&records.Order{}).
		Where("id = ?", rec.ID).
		Updates(map[string]any{
			"status":       rec.Status,
			"updated_date": rec.UpdatedDate,
		}).Error
}

func (r *orderRepo) AppendEvent(ctx context.Context, tx *gorm.DB, ev *records.OrderEvent) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Create(ev).Error
}
