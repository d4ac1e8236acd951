package product

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avenlyn/commerce-backend/internal/domain"
	"github.com/avenlyn/commerce-backend/internal/domain/valueobject"
)

func newProduct(t *testing.T) *Product {
	t.Helper()
	name, err := valueobject.NewProductName("Widget 2000")
	require.NoError(t, err)
	description, err := valueobject.NewProductDescription("A sturdy widget for daily use.")
	require.NoError(t, err)
	sku, err := valueobject.NewProductSKU("AB123")
	require.NoError(t, err)

	p, err := New(name, description, sku)
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	p := newProduct(t)
	require.False(t, p.ID().IsZero())
	require.Equal(t, "Widget 2000", p.Name().String())
	require.Equal(t, "AB123", p.SKU().String())
}

func TestNewProductRejectsZeroFields(t *testing.T) {
	p := newProduct(t)

	_, err := New(valueobject.ProductName{}, p.Description(), p.SKU())
	require.True(t, domain.IsCode(err, domain.CodeValidation))

	_, err = New(p.Name(), valueobject.ProductDescription{}, p.SKU())
	require.True(t, domain.IsCode(err, domain.CodeValidation))

	_, err = New(p.Name(), p.Description(), valueobject.ProductSKU{})
	require.True(t, domain.IsCode(err, domain.CodeValidation))
}

func TestChangeFields(t *testing.T) {
	p := newProduct(t)

	name, err := valueobject.NewProductName("Widget 3000")
	require.NoError(t, err)
	require.NoError(t, p.ChangeName(name))
	require.Equal(t, "Widget 3000", p.Name().String())

	sku, err := valueobject.NewProductSKU("CD456")
	require.NoError(t, err)
	require.NoError(t, p.ChangeSKU(sku))
	require.Equal(t, "CD456", p.SKU().String())

	require.True(t, domain.IsCode(p.ChangeName(valueobject.ProductName{}), domain.CodeValidation))
	require.True(t, domain.IsCode(p.ChangeDescription(valueobject.ProductDescription{}), domain.CodeValidation))
	require.True(t, domain.IsCode(p.ChangeSKU(valueobject.ProductSKU{}), domain.CodeValidation))
}

func TestRehydrate(t *testing.T) {
	p := newProduct(t)

	restored, err := Rehydrate(p.ID(), p.Name(), p.Description(), p.SKU())
	require.NoError(t, err)
	require.True(t, restored.ID().Equals(p.ID()))

	_, err = Rehydrate(valueobject.ProductID{}, p.Name(), p.Description(), p.SKU())
	require.True(t, domain.IsCode(err, domain.CodeValidation))
}
