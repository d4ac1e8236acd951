package services

import (
	"context"
	"testing"

	"github.com/google/uuid"

	customerrepo "github.com/avenlyn/commerce-backend/internal/data/repos/customer"
	"github.com/avenlyn/commerce-backend/internal/data/repos/testutil"
	"github.com/avenlyn/commerce-backend/internal/domain"
)

func newCustomerService(t *testing.T) CustomerService {
	t.Helper()
	tx := testutil.Tx(t, testutil.DB(t))
	log := testutil.Logger(t)
	return NewCustomerService(tx, log, customerrepo.NewCustomerRepo(tx, log))
}

func TestCreateCustomer(t *testing.T) {
	svc := newCustomerService(t)

	c, err := svc.Create(context.Background(), "Alice", "Smith", "+44 7911 123456", "create@example.com")
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}
	if c.PhoneNumber().String() != "+447911123456" {
		t.Fatalf("expected normalized phone, got %s", c.PhoneNumber())
	}

	got, err := svc.GetByID(context.Background(), c.ID().UUID())
	if err != nil {
		t.Fatalf("get customer: %v", err)
	}
	if !got.ID().Equals(c.ID()) {
		t.Fatalf("id mismatch: got %s want %s", got.ID(), c.ID())
	}
}

func TestCreateCustomerInvalidField(t *testing.T) {
	svc := newCustomerService(t)

	_, err := svc.Create(context.Background(), "A", "Smith", "07911123456", "bad@example.com")
	if !domain.IsCode(err, domain.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateCustomerDuplicateEmail(t *testing.T) {
	svc := newCustomerService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "Alice", "Smith", "07911123456", "dup@example.com"); err != nil {
		t.Fatalf("create customer: %v", err)
	}

	_, err := svc.Create(ctx, "Bob", "Jones", "07911123457", "dup@example.com")
	if !domain.IsCode(err, domain.CodeConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestChangeCustomerFields(t *testing.T) {
	svc := newCustomerService(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, "Alice", "Smith", "07911123456", "fields@example.com")
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}
	id := c.ID().UUID()

	if _, err := svc.ChangeFirstName(ctx, id, "Beth"); err != nil {
		t.Fatalf("change first name: %v", err)
	}
	if _, err := svc.ChangeLastName(ctx, id, "Jones"); err != nil {
		t.Fatalf("change last name: %v", err)
	}
	if _, err := svc.ChangePhoneNumber(ctx, id, "07911 999 888"); err != nil {
		t.Fatalf("change phone: %v", err)
	}
	updated, err := svc.ChangeEmail(ctx, id, "fields2@example.com")
	if err != nil {
		t.Fatalf("change email: %v", err)
	}
	if updated.FirstName().String() != "Beth" || updated.LastName().String() != "Jones" {
		t.Fatalf("name not updated: %s %s", updated.FirstName(), updated.LastName())
	}

	got, err := svc.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get customer: %v", err)
	}
	if got.Email().String() != "fields2@example.com" {
		t.Fatalf("email not persisted: %s", got.Email())
	}
	if got.PhoneNumber().String() != "07911999888" {
		t.Fatalf("phone not persisted: %s", got.PhoneNumber())
	}
}

func TestChangeFieldInvalidValueLeavesStoreUntouched(t *testing.T) {
	svc := newCustomerService(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, "Alice", "Smith", "07911123456", "untouched@example.com")
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}

	if _, err := svc.ChangeFirstName(ctx, c.ID().UUID(), "X"); !domain.IsCode(err, domain.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	got, err := svc.GetByID(ctx, c.ID().UUID())
	if err != nil {
		t.Fatalf("get customer: %v", err)
	}
	if got.FirstName().String() != "Alice" {
		t.Fatalf("first name should be unchanged, got %s", got.FirstName())
	}
}

func TestChangeFieldUnknownCustomer(t *testing.T) {
	svc := newCustomerService(t)

	_, err := svc.ChangeFirstName(context.Background(), uuid.New(), "Beth")
	if !domain.IsCode(err, domain.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
