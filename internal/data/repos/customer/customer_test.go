package customer

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	orderrepo "github.com/avenlyn/commerce-backend/internal/data/repos/order"
	"github.com/avenlyn/commerce-backend/internal/data/repos/testutil"
	"github.com/avenlyn/commerce-backend/internal/domain"
	customeragg "github.com/avenlyn/commerce-backend/internal/domain/customer"
	orderagg "github.com/avenlyn/commerce-backend/internal/domain/order"
	"github.com/avenlyn/commerce-backend/internal/domain/valueobject"
)

func mustCustomer(t *testing.T, email string) *customeragg.Customer {
	t.Helper()
	first, _ := valueobject.NewFirstName("Alice")
	last, _ := valueobject.NewLastName("Smith")
	phone, _ := valueobject.NewPhoneNumber("07911123456")
	address, err := valueobject.NewEmail(email)
	if err != nil {
		t.Fatalf("build email: %v", err)
	}
	c, err := customeragg.New(first, last, phone, address)
	if err != nil {
		t.Fatalf("build customer: %v", err)
	}
	return c
}

func TestCustomerRoundTrip(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewCustomerRepo(tx, testutil.Logger(t))
	ctx := context.Background()

	c := mustCustomer(t, "roundtrip@example.com")
	if err := repo.Create(ctx, tx, c); err != nil {
		t.Fatalf("create customer: %v", err)
	}

	got, err := repo.GetByID(ctx, tx, c.ID().UUID())
	if err != nil {
		t.Fatalf("get customer: %v", err)
	}
	if !got.ID().Equals(c.ID()) {
		t.Fatalf("id mismatch: got %s want %s", got.ID(), c.ID())
	}
	if got.FirstName().String() != "Alice" || got.LastName().String() != "Smith" {
		t.Fatalf("name mismatch: %s %s", got.FirstName(), got.LastName())
	}
	if got.Email().String() != "roundtrip@example.com" {
		t.Fatalf("email mismatch: %s", got.Email())
	}
	if len(got.Orders()) != 0 {
		t.Fatalf("expected no orders, got %d", len(got.Orders()))
	}
}

func TestGetByIDNotFound(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewCustomerRepo(tx, testutil.Logger(t))

	_, err := repo.GetByID(context.Background(), tx, uuid.New())
	if !domain.IsCode(err, domain.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGetByIDLoadsOrders(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewCustomerRepo(tx, testutil.Logger(t))
	ctx := context.Background()

	c := mustCustomer(t, "withorders@example.com")
	if err := repo.Create(ctx, tx, c); err != nil {
		t.Fatalf("create customer: %v", err)
	}

	now := time.Now().UTC()
	pid := valueobject.NextProductID()
	o, err := orderagg.New(pid, c.ID(), valueobject.NewOrderDate(now), now)
	if err != nil {
		t.Fatalf("build order: %v", err)
	}
	rec := orderrepo.ToRecord(o)
	if err := tx.Create(&rec).Error; err != nil {
		t.Fatalf("insert order row: %v", err)
	}

	got, err := repo.GetByID(ctx, tx, c.ID().UUID())
	if err != nil {
		t.Fatalf("get customer: %v", err)
	}
	if len(got.Orders()) != 1 {
		t.Fatalf("expected 1 order, got %d", len(got.Orders()))
	}
	loaded, err := got.FindOrder(o.ID())
	if err != nil {
		t.Fatalf("find order: %v", err)
	}
	if loaded.Status() != orderagg.StatusPending {
		t.Fatalf("expected pending, got %s", loaded.Status())
	}
}

func TestUpdatePersistsFieldChanges(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewCustomerRepo(tx, testutil.Logger(t))
	ctx := context.Background()

	c := mustCustomer(t, "before@example.com")
	if err := repo.Create(ctx, tx, c); err != nil {
		t.Fatalf("create customer: %v", err)
	}

	newEmail, _ := valueobject.NewEmail("after@example.com")
	if err := c.ChangeEmail(newEmail); err != nil {
		t.Fatalf("change email: %v", err)
	}
	if err := repo.Update(ctx, tx, c); err != nil {
		t.Fatalf("update customer: %v", err)
	}

	got, err := repo.GetByID(ctx, tx, c.ID().UUID())
	if err != nil {
		t.Fatalf("get customer: %v", err)
	}
	if got.Email().String() != "after@example.com" {
		t.Fatalf("email not updated: %s", got.Email())
	}
}

func TestEmailExists(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewCustomerRepo(tx, testutil.Logger(t))
	ctx := context.Background()

	c := mustCustomer(t, "exists@example.com")
	if err := repo.Create(ctx, tx, c); err != nil {
		t.Fatalf("create customer: %v", err)
	}

	exists, err := repo.EmailExists(ctx, tx, "exists@example.com")
	if err != nil {
		t.Fatalf("email exists: %v", err)
	}
	if !exists {
		t.Fatal("expected email to exist")
	}

	exists, err = repo.EmailExists(ctx, tx, "missing@example.com")
	if err != nil {
		t.Fatalf("email exists: %v", err)
	}
	if exists {
		t.Fatal("expected email to be missing")
	}
}

func TestGetPage(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewCustomerRepo(tx, testutil.Logger(t))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		c := mustCustomer(t, fmt.Sprintf("page%d@example.com", i))
		if err := repo.Create(ctx, tx, c); err != nil {
			t.Fatalf("create customer %d: %v", i, err)
		}
	}

	page, err := repo.GetPage(ctx, tx, 2, 0)
	if err != nil {
		t.Fatalf("get page: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(page))
	}

	rest, err := repo.GetPage(ctx, tx, 2, 2)
	if err != nil {
		t.Fatalf("get page: %v", err)
	}
	if len(rest) != 1 {
		t.Fatalf("expected 1 customer, got %d", len(rest))
	}
}
