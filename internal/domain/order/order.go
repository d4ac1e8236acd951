// Package order holds the order aggregate and its lifecycle rules.
package order

import (
	"time"

	"github.com/avenlyn/commerce-backend/internal/domain"
	"github.com/avenlyn/commerce-backend/internal/domain/valueobject"
)

// Status is the order lifecycle state. Transitions run one way: pending to
// either terminal state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusComplete  Status = "complete"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusComplete, StatusCancelled:
		return true
	default:
		return false
	}
}

// Order is an aggregate root. All fields are private; state changes go
// through the lifecycle methods, which enforce the transition rules.
type Order struct {
	id          valueobject.OrderID
	productID   valueobject.ProductID
	customerID  valueobject.CustomerID
	status      Status
	createdDate valueobject.OrderDate
	updatedDate *valueobject.OrderDate
}

// New creates a pending order with a fresh sequential identifier. A created
// date strictly after now is rejected; equal to now is fine.
func New(productID valueobject.ProductID, customerID valueobject.CustomerID, createdDate valueobject.OrderDate, now time.Time) (*Order, error) {
	if productID.IsZero() {
		return nil, domain.Validation("product_id", "must not be empty")
	}
	if customerID.IsZero() {
		return nil, domain.Validation("customer_id", "must not be empty")
	}
	if createdDate.IsZero() {
		return nil, domain.Validation("created_date", "must not be empty")
	}
	if createdDate.Time().After(now.UTC()) {
		return nil, domain.Invariant("created date cannot be in the future")
	}
	return &Order{
		id:          valueobject.NextOrderID(),
		productID:   productID,
		customerID:  customerID,
		status:      StatusPending,
		createdDate: createdDate,
	}, nil
}

// Rehydrate restores a persisted order without re-running creation-time
// checks; the status enum is still validated so a corrupt row cannot produce
// an order in an unknown state.
func Rehydrate(id valueobject.OrderID, productID valueobject.ProductID, customerID valueobject.CustomerID, status Status, createdDate valueobject.OrderDate, updatedDate *valueobject.OrderDate) (*Order, error) {
	if id.IsZero() {
		return nil, domain.Validation("order_id", "must not be empty")
	}
	if productID.IsZero() {
		return nil, domain.Validation("product_id", "must not be empty")
	}
	if customerID.IsZero() {
		return nil, domain.Validation("customer_id", "must not be empty")
	}
	if !status.Valid() {
		return nil, domain.Validation("status", "unknown order status")
	}
	return &Order{
		id:          id,
		productID:   productID,
		customerID:  customerID,
		status:      status,
		createdDate: createdDate,
		updatedDate: updatedDate,
	}, nil
}

// Cancel moves the order to cancelled and stamps the update time. Only
// re-cancelling is rejected; a completed order may still be cancelled (the
// refund flow relies on this).
func (o *Order) Cancel(now time.Time) error {
	if o.status == StatusCancelled {
		return domain.Conflict("order is already cancelled")
	}
	o.status = StatusCancelled
	d := valueobject.NewOrderDate(now)
	o.updatedDate = &d
	return nil
}

// Complete moves the order to complete and stamps the update time.
func (o *Order) Complete(now time.Time) error {
	if o.status == StatusComplete {
		return domain.Conflict("order is already complete")
	}
	o.status = StatusComplete
	d := valueobject.NewOrderDate(now)
	o.updatedDate = &d
	return nil
}

func (o *Order) ID() valueobject.OrderID          { return o.id }
func (o *Order) ProductID() valueobject.ProductID { return o.productID }
func (o *Order) CustomerID() valueobject.CustomerID {
	return o.customerID
}
func (o *Order) Status() Status                       { return o.status }
func (o *Order) CreatedDate() valueobject.OrderDate   { return o.createdDate }
func (o *Order) UpdatedDate() *valueobject.OrderDate  { return o.updatedDate }
