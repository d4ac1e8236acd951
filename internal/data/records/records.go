// Package records holds the GORM row models. Repositories map these to and
// from the domain aggregates; nothing above the data layer touches them.
package records

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Customer struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName   string    `gorm:"not null;column:first_name" json:"first_name"`
	LastName    string    `gorm:"not null;column:last_name" json:"last_name"`
	PhoneNumber string    `gorm:"not null;column:phone_number" json:"phone_number"`
	Email       string    `gorm:"uniqueIndex;not null;column:email" json:"email"`

	Orders []Order `gorm:"foreignKey:CustomerID" json:"orders,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Customer) TableName() string { return "customer" }

type Order struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID   uuid.UUID  `gorm:"type:uuid;not null;index;column:product_id" json:"product_id"`
	CustomerID  uuid.UUID  `gorm:"type:uuid;not null;index;column:customer_id" json:"customer_id"`
	Status      string     `gorm:"not null;column:status" json:"status"`
	CreatedDate time.Time  `gorm:"not null;column:created_date" json:"created_date"`
	UpdatedDate *time.Time `gorm:"column:updated_date" json:"updated_date,omitempty"`
}

func (Order) TableName() string { return "order" }

type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"not null;column:name" json:"name"`
	Description string    `gorm:"not null;column:description" json:"description"`
	SKU         string    `gorm:"uniqueIndex;not null;column:sku" json:"sku"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Product) TableName() string { return "product" }

// OrderEvent is an append-only audit row for order lifecycle transitions.
type OrderEvent struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID   uuid.UUID      `gorm:"type:uuid;not null;index;column:order_id" json:"order_id"`
	Type      string         `gorm:"not null;column:type" json:"type"`
	Payload   datatypes.JSON `gorm:"column:payload" json:"payload"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
}

func (OrderEvent) TableName() string { return "order_event" }

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Password  string    `gorm:"not null;column:password" json:"-"`
	FirstName string    `gorm:"not null;column:first_name" json:"first_name"`
	LastName  string    `gorm:"not null;column:last_name" json:"last_name"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (User) TableName() string { return "user" }

type UserToken struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	AccessToken  string    `gorm:"not null;index;column:access_token" json:"-"`
	RefreshToken string    `gorm:"not null;uniqueIndex;column:refresh_token" json:"-"`
	ExpiresAt    time.Time `gorm:"not null;column:expires_at" json:"expires_at"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}

func (UserToken) TableName() string { return "user_token" }
