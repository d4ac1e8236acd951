package handlers

import (
	"time"

	customeragg "github.com/avenlyn/commerce-backend/internal/domain/customer"
	orderagg "github.com/avenlyn/commerce-backend/internal/domain/order"
	productent "github.com/avenlyn/commerce-backend/internal/domain/product"
)

// Response shapes returned by the API. Aggregates keep their fields private,
// so every handler maps through these instead of serialising domain types
// directly.

type orderView struct {
	ID          string     `json:"id"`
	ProductID   string     `json:"product_id"`
	CustomerID  string     `json:"customer_id"`
	Status      string     `json:"status"`
	CreatedDate time.Time  `json:"created_date"`
	UpdatedDate *time.Time `json:"updated_date,omitempty"`
}

type customerView struct {
	ID          string      `json:"id"`
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	PhoneNumber string      `json:"phone_number"`
	Email       string      `json:"email"`
	Orders      []orderView `json:"orders"`
}

type productView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	SKU         string `json:"sku"`
}

func toOrderView(o *orderagg.Order) orderView {
	v := orderView{
		ID:          o.ID().String(),
		ProductID:   o.ProductID().String(),
		CustomerID:  o.CustomerID().String(),
		Status:      string(o.Status()),
		CreatedDate: o.CreatedDate().Time(),
	}
	if updated := o.UpdatedDate(); updated != nil {
		t := updated.Time()
		v.UpdatedDate = &t
	}
	return v
}

func toOrderViews(orders []*orderagg.Order) []orderView {
	out := make([]orderView, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderView(o))
	}
	return out
}

func toCustomerView(c *customeragg.Customer) customerView {
	return customerView{
		ID:          c.ID().String(),
		FirstName:   c.FirstName().String(),
		LastName:    c.LastName().String(),
		PhoneNumber: c.PhoneNumber().String(),
		Email:       c.Email().String(),
		Orders:      toOrderViews(c.Orders()),
	}
}

func toProductView(p *productent.Product) productView {
	return productView{
		ID:          p.ID().String(),
		Name:        p.Name().String(),
		Description: p.Description().String(),
		SKU:         p.SKU().String(),
	}
}
