package customer

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/avenlyn/commerce-backend/internal/data/records"
	orderrepo "github.com/avenlyn/commerce-backend/internal/data/repos/order"
	"github.com/avenlyn/commerce-backend/internal/domain"
	customeragg "github.com/avenlyn/commerce-backend/internal/domain/customer"
	orderagg "github.com/avenlyn/commerce-backend/internal/domain/order"
	"github.com/avenlyn/commerce-backend/internal/domain/valueobject"
	"github.com/avenlyn/commerce-backend/internal/pkg/logger"
)

type CustomerRepo interface {
	Create(ctx context.Context, tx *gorm.DB, c *customeragg.Customer) error
	// GetByID loads the customer together with its order collection.
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*customeragg.Customer, error)
	GetPage(ctx context.Context, tx *gorm.DB, limit, offset int) ([]*customeragg.Customer, error)
	Update(ctx context.Context, tx *gorm.DB, c *customeragg.Customer) error
	EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error)
}

type customerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCustomerRepo(db *gorm.DB, baseLog *logger.Logger) CustomerRepo {
	return &customerRepo{db: db, log: baseLog.With("repo", "CustomerRepo")}
}

func toRecord(c *customeragg.Customer) records.Customer {
	return records.Customer{
		ID:          c.ID().UUID(),
		FirstName:   c.FirstName().String(),
		LastName:    c.LastName().String(),
		PhoneNumber: c.PhoneNumber().String(),
		Email:       c.Email().String(),
	}
}

// rehydrate maps a row (plus any preloaded order rows) back through the
// value-object constructors.
func rehydrate(rec records.Customer) (*customeragg.Customer, error) {
	id, err := valueobject.NewCustomerID(rec.ID)
	if err != nil {
		return nil, err
	}
	firstName, err := valueobject.NewFirstName(rec.FirstName)
	if err != nil {
		return nil, err
	}
	lastName, err := valueobject.NewLastName(rec.LastName)
	if err != nil {
		return nil, err
	}
	phone, err := valueobject.NewPhoneNumber(rec.PhoneNumber)
	if err != nil {
		return nil, err
	}
	email, err := valueobject.NewEmail(rec.Email)
	if err != nil {
		return nil, err
	}
	orders := make([]*orderagg.Order, 0, len(rec.Orders))
	for _, orderRec := range rec.Orders {
		o, err := orderrepo.Rehydrate(orderRec)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return customeragg.Rehydrate(id, firstName, lastName, phone, email, orders)
}

func (r *customerRepo) Create(ctx context.Context, tx *gorm.DB, c *customeragg.Customer) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	rec := toRecord(c)
	return transaction.WithContext(ctx).Omit("Orders").Create(&rec).Error
}

func (r *customerRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*customeragg.Customer, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var rec records.Customer
	if err := transaction.WithContext(ctx).
		Preload("Orders").
		Where("id = ?", id).
		First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("customer not found")
		}
		return nil, err
	}
	return rehydrate(rec)
}

func (r *customerRepo) GetPage(ctx context.Context, tx *gorm.DB, limit, offset int) ([]*customeragg.Customer, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if limit <= 0 {
		limit = 50
	}
	var recs []records.Customer
	if err := transaction.WithContext(ctx).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]*customeragg.Customer, 0, len(recs))
	for _, rec := range recs {
		c, err := rehydrate(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *customerRepo) Update(ctx context.Context, tx *gorm.DB, c *customeragg.Customer) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	rec := toRecord(c)
	return transaction.WithContext(ctx).
		Model(&records.Customer{}).
		Where("id = ?", rec.ID).
		Updates(map[string]any{
			"first_name":   rec.FirstName,
			"last_name":    rec.LastName,
			"phone_number": rec.PhoneNumber,
			"email":        rec.Email,
		}).Error
}

func (r *customerRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&records.Customer{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
