package valueobject

import (
	"github.com/google/uuid"

	"github.com/avenlyn/commerce-backend/internal/pkg/seqid"
)

// CustomerID is a typed customer identifier. The distinct wrapper types keep
// customer, order and product identifiers from being swapped by accident.
type CustomerID struct {
	value uuid.UUID
}

func NewCustomerID(raw uuid.UUID) (CustomerID, error) {
	v, err := parseUUID("customer_id", raw)
	if err != nil {
		return CustomerID{}, err
	}
	return CustomerID{value: v}, nil
}

// NextCustomerID mints a fresh sequential customer identifier.
func NextCustomerID() CustomerID { return CustomerID{value: seqid.New()} }

func (id CustomerID) UUID() uuid.UUID              { return id.value }
func (id CustomerID) String() string               { return id.value.String() }
func (id CustomerID) IsZero() bool                 { return id.value == uuid.Nil }
func (id CustomerID) Equals(other CustomerID) bool { return id.value == other.value }

// OrderID is a typed order identifier.
type OrderID struct {
	value uuid.UUID
}

func NewOrderID(raw uuid.UUID) (OrderID, error) {
	v, err := parseUUID("order_id", raw)
	if err != nil {
		return OrderID{}, err
	}
	return OrderID{value: v}, nil
}

// NextOrderID mints a fresh sequential order identifier.
func NextOrderID() OrderID { return OrderID{value: seqid.New()} }

func (id OrderID) UUID() uuid.UUID           { return id.value }
func (id OrderID) String() string            { return id.value.String() }
func (id OrderID) IsZero() bool              { return id.value == uuid.Nil }
func (id OrderID) Equals(other OrderID) bool { return id.value == other.value }

// ProductID is a typed product identifier.
type ProductID struct {
	value uuid.UUID
}

func NewProductID(raw uuid.UUID) (ProductID, error) {
	v, err := parseUUID("product_id", raw)
	if err != nil {
		return ProductID{}, err
	}
	return ProductID{value: v}, nil
}

// NextProductID mints a fresh sequential product identifier.
func NextProductID() ProductID { return ProductID{value: seqid.New()} }

func (id ProductID) UUID() uuid.UUID             { return id.value }
func (id ProductID) String() string              { return id.value.String() }
func (id ProductID) IsZero() bool                { return id.value == uuid.Nil }
func (id ProductID) Equals(other ProductID) bool { return id.value == other.value }
