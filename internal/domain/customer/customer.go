// Package customer holds the customer aggregate. The customer owns the
// orders placed against it: every order in the collection carries this
// customer's identifier.
package customer

import (
	"github.com/avenlyn/commerce-backend/internal/domain"
	"github.com/avenlyn/commerce-backend/internal/domain/order"
	"github.com/avenlyn/commerce-backend/internal/domain/valueobject"
)

type Customer struct {
	id        valueobject.CustomerID
	firstName valueobject.FirstName
	lastName  valueobject.LastName
	phone     valueobject.PhoneNumber
	email     valueobject.Email
	orders    []*order.Order
}

// New creates a customer with a fresh sequential identifier and an empty
// order list. The arguments arrive already validated by their constructors;
// only zero values (never constructed) are rejected here.
func New(firstName valueobject.FirstName, lastName valueobject.LastName, phone valueobject.PhoneNumber, email valueobject.Email) (*Customer, error) {
	if firstName.IsZero() {
		return nil, domain.Validation("first_name", "must not be empty")
	}
	if lastName.IsZero() {
		return nil, domain.Validation("last_name", "must not be empty")
	}
	if phone.IsZero() {
		return nil, domain.Validation("phone_number", "must not be empty")
	}
	if email.IsZero() {
		return nil, domain.Validation("email", "must not be empty")
	}
	return &Customer{
		id:        valueobject.NextCustomerID(),
		firstName: firstName,
		lastName:  lastName,
		phone:     phone,
		email:     email,
	}, nil
}

// Rehydrate restores a persisted customer together with its loaded orders.
func Rehydrate(id valueobject.CustomerID, firstName valueobject.FirstName, lastName valueobject.LastName, phone valueobject.PhoneNumber, email valueobject.Email, orders []*order.Order) (*Customer, error) {
	if id.IsZero() {
		return nil, domain.Validation("customer_id", "must not be empty")
	}
	c := &Customer{
		id:        id,
		firstName: firstName,
		lastName:  lastName,
		phone:     phone,
		email:     email,
	}
	for _, o := range orders {
		if err := c.PlaceOrder(o); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Customer) ChangeFirstName(v valueobject.FirstName) error {
	if v.IsZero() {
		return domain.Validation("first_name", "must not be empty")
	}
	c.firstName = v
	return nil
}

func (c *Customer) ChangeLastName(v valueobject.LastName) error {
	if v.IsZero() {
		return domain.Validation("last_name", "must not be empty")
	}
	c.lastName = v
	return nil
}

func (c *Customer) ChangePhoneNumber(v valueobject.PhoneNumber) error {
	if v.IsZero() {
		return domain.Validation("phone_number", "must not be empty")
	}
	c.phone = v
	return nil
}

func (c *Customer) ChangeEmail(v valueobject.Email) error {
	if v.IsZero() {
		return domain.Validation("email", "must not be empty")
	}
	c.email = v
	return nil
}

// PlaceOrder attaches an order to this customer. Orders raised against a
// different customer are rejected.
func (c *Customer) PlaceOrder(o *order.Order) error {
	if o == nil {
		return domain.Validation("order", "must not be nil")
	}
	if !o.CustomerID().Equals(c.id) {
		return domain.Invariant("order belongs to a different customer")
	}
	c.orders = append(c.orders, o)
	return nil
}

// FindOrder searches the loaded order collection only; it never reaches the
// store (the repository is responsible for loading orders up front).
func (c *Customer) FindOrder(id valueobject.OrderID) (*order.Order, error) {
	for _, o := range c.orders {
		if o.ID().Equals(id) {
			return o, nil
		}
	}
	return nil, domain.NotFound("order not found for customer")
}

func (c *Customer) ID() valueobject.CustomerID        { return c.id }
func (c *Customer) FirstName() valueobject.FirstName  { return c.firstName }
func (c *Customer) LastName() valueobject.LastName    { return c.lastName }
func (c *Customer) PhoneNumber() valueobject.PhoneNumber {
	return c.phone
}
func (c *Customer) Email() valueobject.Email { return c.email }

// Orders returns a copy of the order collection.
func (c *Customer) Orders() []*order.Order {
	out := make([]*order.Order, len(c.orders))
	copy(out, c.orders)
	return out
}
