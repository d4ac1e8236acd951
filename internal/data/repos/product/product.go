package product

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/avenlyn/commerce-backend/internal/data/records"
	"github.com/avenlyn/commerce-backend/internal/domain"
	productent "github.com/avenlyn/commerce-backend/internal/domain/product"
	"github.com/avenlyn/commerce-backend/internal/domain/valueobject"
	"github.com/avenlyn/commerce-backend/internal/pkg/logger"
)

type ProductRepo interface {
	Create(ctx context.Context, tx *gorm.DB, p *productent.Product) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*productent.Product, error)
	GetPage(ctx context.Context, tx *gorm.DB, limit, offset int) ([]*productent.Product, error)
	Update(ctx context.Context, tx *gorm.DB, p *productent.Product) error
	Exists(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error)
	SKUExists(ctx context.Context, tx *gorm.DB, sku string) (bool, error)
}

type productRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProductRepo(db *gorm.DB, baseLog *logger.Logger) ProductRepo {
	return &productRepo{db: db, log: baseLog.With("repo", "ProductRepo")}
}

func toRecord(p *productent.Product) records.Product {
	return records.Product{
		ID:          p.ID().UUID(),
		Name:        p.Name().String(),
		Description: p.Description().String(),
		SKU:         p.SKU().String(),
	}
}

func rehydrate(rec records.Product) (*productent.Product, error) {
	id, err := valueobject.NewProductID(rec.ID)
	if err != nil {
		return nil, err
	}
	name, err := valueobject.NewProductName(rec.Name)
	if err != nil {
		return nil, err
	}
	description, err := valueobject.NewProductDescription(rec.Description)
	if err != nil {
		return nil, err
	}
	sku, err := valueobject.NewProductSKU(rec.SKU)
	if err != nil {
		return nil, err
	}
	return productent.Rehydrate(id, name, description, sku)
}

func (r *productRepo) Create(ctx context.Context, tx *gorm.DB, p *productent.Product) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	rec := toRecord(p)
	return transaction.WithContext(ctx).Create(&rec).Error
}

func (r *productRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*productent.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var rec records.Product
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("product not found")
		}
		return nil, err
	}
	return rehydrate(rec)
}

func (r *productRepo) GetPage(ctx context.Context, tx *gorm.DB, limit, offset int) ([]*productent.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if limit <= 0 {
		limit = 50
	}
	var recs []records.Product
	if err := transaction.WithContext(ctx).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]*productent.Product, 0, len(recs))
	for _, rec := range recs {
		p, err := rehydrate(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *productRepo) Update(ctx context.Context, tx *gorm.DB, p *productent.Product) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	rec := toRecord(p)
	return transaction.WithContext(ctx).
		Model(&records.Product{}).
		Where("id = ?", rec.ID).
		Updates(map[string]any{
			"name":        rec.Name,
			"description": rec.Description,
			"sku":         rec.SKU,
		}).Error
}

func (r *productRepo) Exists(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&records.Product{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *productRepo) SKUExists(ctx context.Context, tx *gorm.DB, sku string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&records.Product{}).
		Where("sku = ?", sku).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
