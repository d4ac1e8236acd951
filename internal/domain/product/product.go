// Package product holds the product entity.
package product

import (
	"github.com/avenlyn/commerce-backend/internal/domain"
	"github.com/avenlyn/commerce-backend/internal/domain/valueobject"
)

type Product struct {
	id          valueobject.ProductID
	name        valueobject.ProductName
	description valueobject.ProductDescription
	sku         valueobject.ProductSKU
}

// New creates a product with a fresh sequential identifier. Field validation
// already happened in the value-object constructors.
func New(name valueobject.ProductName, description valueobject.ProductDescription, sku valueobject.ProductSKU) (*Product, error) {
	if name.IsZero() {
		return nil, domain.Validation("product_name", "must not be empty")
	}
	if description.IsZero() {
		return nil, domain.Validation("product_description", "must not be empty")
	}
	if sku.IsZero() {
		return nil, domain.Validation("product_sku", "must not be empty")
	}
	return &Product{
		id:          valueobject.NextProductID(),
		name:        name,
		description: description,
		sku:         sku,
	}, nil
}

// Rehydrate restores a persisted product.
func Rehydrate(id valueobject.ProductID, name valueobject.ProductName, description valueobject.ProductDescription, sku valueobject.ProductSKU) (*Product, error) {
	if id.IsZero() {
		return nil, domain.Validation("product_id", "must not be empty")
	}
	return &Product{id: id, name: name, description: description, sku: sku}, nil
}

func (p *Product) ChangeName(v valueobject.ProductName) error {
	if v.IsZero() {
		return domain.Validation("product_name", "must not be empty")
	}
	p.name = v
	return nil
}

func (p *Product) ChangeDescription(v valueobject.ProductDescription) error {
	if v.IsZero() {
		return domain.Validation("product_description", "must not be empty")
	}
	p.description = v
	return nil
}

func (p *Product) ChangeSKU(v valueobject.ProductSKU) error {
	if v.IsZero() {
		return domain.Validation("product_sku", "must not be empty")
	}
	p.sku = v
	return nil
}

func (p *Product) ID() valueobject.ProductID     { return p.id }
func (p *Product) Name() valueobject.ProductName { return p.name }
func (p *Product) Description() valueobject.ProductDescription {
	return p.description
}
func (p *Product) SKU() valueobject.ProductSKU { return p.sku }
