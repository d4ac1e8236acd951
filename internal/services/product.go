package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	rediscache "github.com/avenlyn/commerce-backend/internal/clients/redis"
	productrepo "github.com/avenlyn/commerce-backend/internal/data/repos/product"
	"github.com/avenlyn/commerce-backend/internal/domain"
	productent "github.com/avenlyn/commerce-backend/internal/domain/product"
	"github.com/avenlyn/commerce-backend/internal/domain/valueobject"
	"github.com/avenlyn/commerce-backend/internal/pkg/logger"
)

type ProductService interface {
	Create(ctx context.Context, name, description, sku string) (*productent.Product, error)
	ChangeName(ctx context.Context, id uuid.UUID, raw string) (*productent.Product, error)
	ChangeDescription(ctx context.Context, id uuid.UUID, raw string) (*productent.Product, error)
	ChangeSKU(ctx context.Context, id uuid.UUID, raw string) (*productent.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*productent.Product, error)
	List(ctx context.Context, limit, offset int) ([]*productent.Product, error)
}

const productCacheTTL = 5 * time.Minute

type productService struct {
	db          *gorm.DB
	log         *logger.Logger
	productRepo productrepo.ProductRepo
	cache       rediscache.Cache // nil when redis is not configured
}

func NewProductService(db *gorm.DB, log *logger.Logger, repo productrepo.ProductRepo, cache rediscache.Cache) ProductService {
	return &productService{
		db:          db,
		log:         log.With("service", "ProductService"),
		productRepo: repo,
		cache:       cache,
	}
}

// productView is the cached row shape; rebuilding the entity from it still
// runs the value-object constructors.
type productView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	SKU         string    `json:"sku"`
}

func productCacheKey(id uuid.UUID) string { return "product:" + id.String() }

func (s *productService) Create(ctx context.Context, name, description, sku string) (*productent.Product, error) {
	productName, err := valueobject.NewProductName(name)
	if err != nil {
		return nil, err
	}
	productDescription, err := valueobject.NewProductDescription(description)
	if err != nil {
		return nil, err
	}
	productSKU, err := valueobject.NewProductSKU(sku)
	if err != nil {
		return nil, err
	}

	p, err := productent.New(productName, productDescription, productSKU)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.productRepo.SKUExists(ctx, tx, productSKU.String())
		if err != nil {
			return err
		}
		if exists {
			return domain.Conflict("sku already in use")
		}
		return s.productRepo.Create(ctx, tx, p)
	}); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *productService) change(ctx context.Context, id uuid.UUID, mutate func(*productent.Product) error) (*productent.Product, error) {
	var out *productent.Product
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := s.productRepo.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := mutate(p); err != nil {
			return err
		}
		if err := s.productRepo.Update(ctx, tx, p); err != nil {
			return err
		}
		out = p
		return nil
	}); err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Delete(ctx, productCacheKey(id))
	}
	return out, nil
}

func (s *productService) ChangeName(ctx context.Context, id uuid.UUID, raw string) (*productent.Product, error) {
	v, err := valueobject.NewProductName(raw)
	if err != nil {
		return nil, err
	}
	return s.change(ctx, id, func(p *productent.Product) error {
		return p.ChangeName(v)
	})
}

func (s *productService) ChangeDescription(ctx context.Context, id uuid.UUID, raw string) (*productent.Product, error) {
	v, err := valueobject.NewProductDescription(raw)
	if err != nil {
		return nil, err
	}
	return s.change(ctx, id, func(p *productent.Product) error {
		return p.ChangeDescription(v)
	})
}

func (s *productService) ChangeSKU(ctx context.Context, id uuid.UUID, raw string) (*productent.Product, error) {
	v, err := valueobject.NewProductSKU(raw)
	if err != nil {
		return nil, err
	}
	var out *productent.Product
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.productRepo.SKUExists(ctx, tx, v.String())
		if err != nil {
			return err
		}
		if exists {
			return domain.Conflict("sku already in use")
		}
		p, err := s.productRepo.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := p.ChangeSKU(v); err != nil {
			return err
		}
		if err := s.productRepo.Update(ctx, tx, p); err != nil {
			return err
		}
		out = p
		return nil
	}); err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Delete(ctx, productCacheKey(id))
	}
	return out, nil
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*productent.Product, error) {
	if s.cache != nil {
		if raw, ok := s.cache.Get(ctx, productCacheKey(id)); ok {
			if p, err := s.fromView(raw); err == nil {
				return p, nil
			}
			// A stale or malformed entry falls through to the store.
			s.cache.Delete(ctx, productCacheKey(id))
		}
	}

	p, err := s.productRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		view := productView{
			ID:          p.ID().UUID(),
			Name:        p.Name().String(),
			Description: p.Description().String(),
			SKU:         p.SKU().String(),
		}
		if raw, err := json.Marshal(view); err == nil {
			s.cache.Set(ctx, productCacheKey(id), raw, productCacheTTL)
		}
	}
	return p, nil
}

func (s *productService) fromView(raw []byte) (*productent.Product, error) {
	var view productView
	if err := json.Unmarshal(raw, &view); err != nil {
		return nil, err
	}
	id, err := valueobject.NewProductID(view.ID)
	if err != nil {
		return nil, err
	}
	name, err := valueobject.NewProductName(view.Name)
	if err != nil {
		return nil, err
	}
	description, err := valueobject.NewProductDescription(view.Description)
	if err != nil {
		return nil, err
	}
	sku, err := valueobject.NewProductSKU(view.SKU)
	if err != nil {
		return nil, err
	}
	return productent.Rehydrate(id, name, description, sku)
}

func (s *productService) List(ctx context.Context, limit, offset int) ([]*productent.Product, error) {
	return s.productRepo.GetPage(ctx, nil, limit, offset)
}
