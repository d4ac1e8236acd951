package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/avenlyn/commerce-backend/internal/data/records"
	customerrepo "github.com/avenlyn/commerce-backend/internal/data/repos/customer"
	orderrepo "github.com/avenlyn/commerce-backend/internal/data/repos/order"
	productrepo "github.com/avenlyn/commerce-backend/internal/data/repos/product"
	"github.com/avenlyn/commerce-backend/internal/data/repos/testutil"
	"github.com/avenlyn/commerce-backend/internal/domain"
	orderagg "github.com/avenlyn/commerce-backend/internal/domain/order"
	"github.com/avenlyn/commerce-backend/internal/pkg/clock"
)

var testNow = time.Date(2026, 5, 20, 12, 0, 0, 0, time.UTC)

type orderFixture struct {
	svc        OrderService
	customerID uuid.UUID
	productID  uuid.UUID
}

func newOrderFixture(t *testing.T) orderFixture {
	t.Helper()
	tx := testutil.Tx(t, testutil.DB(t))
	log := testutil.Logger(t)
	ctx := context.Background()

	customerRepo := customerrepo.NewCustomerRepo(tx, log)
	productRepo := productrepo.NewProductRepo(tx, log)
	orderRepo := orderrepo.NewOrderRepo(tx, log)

	customerSvc := NewCustomerService(tx, log, customerRepo)
	c, err := customerSvc.Create(ctx, "Alice", "Smith", "07911123456", "orders-"+uuid.NewString()+"@example.com")
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}

	productSvc := NewProductService(tx, log, productRepo, nil)
	skuTail := uuid.NewString()
	p, err := productSvc.Create(ctx, "Widget 2000", "A sturdy widget for daily use.", "P"+skuTail[:4])
	if err != nil {
		t.Fatalf("create product: %v", err)
	}

	return orderFixture{
		svc:        NewOrderService(tx, log, clock.At(testNow), orderRepo, customerRepo, productRepo),
		customerID: c.ID().UUID(),
		productID:  p.ID().UUID(),
	}
}

func countEvents(t *testing.T, svc OrderService, orderID uuid.UUID) int64 {
	t.Helper()
	s, ok := svc.(*orderService)
	if !ok {
		t.Fatal("unexpected service type")
	}
	var count int64
	if err := s.db.Model(&records.OrderEvent{}).Where("order_id = ?", orderID).Count(&count).Error; err != nil {
		t.Fatalf("count events: %v", err)
	}
	return count
}

func TestPlaceOrder(t *testing.T) {
	fx := newOrderFixture(t)
	ctx := context.Background()

	o, err := fx.svc.Place(ctx, fx.productID, fx.customerID, nil)
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if o.Status() != orderagg.StatusPending {
		t.Fatalf("expected pending, got %s", o.Status())
	}
	if !o.CreatedDate().Time().Equal(testNow) {
		t.Fatalf("expected created date %v, got %v", testNow, o.CreatedDate().Time())
	}
	if got := countEvents(t, fx.svc, o.ID().UUID()); got != 1 {
		t.Fatalf("expected 1 event, got %d", got)
	}
}

func TestPlaceOrderWithExplicitCreatedDate(t *testing.T) {
	fx := newOrderFixture(t)
	past := testNow.Add(-24 * time.Hour)

	o, err := fx.svc.Place(context.Background(), fx.productID, fx.customerID, &past)
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if !o.CreatedDate().Time().Equal(past) {
		t.Fatalf("expected created date %v, got %v", past, o.CreatedDate().Time())
	}
}

func TestPlaceOrderRejectsFutureCreatedDate(t *testing.T) {
	fx := newOrderFixture(t)
	future := testNow.Add(time.Hour)

	_, err := fx.svc.Place(context.Background(), fx.productID, fx.customerID, &future)
	if !domain.IsCode(err, domain.CodeInvariant) {
		t.Fatalf("expected invariant error, got %v", err)
	}
}

func TestPlaceOrderUnknownProduct(t *testing.T) {
	fx := newOrderFixture(t)

	_, err := fx.svc.Place(context.Background(), uuid.New(), fx.customerID, nil)
	if !domain.IsCode(err, domain.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPlaceOrderUnknownCustomer(t *testing.T) {
	fx := newOrderFixture(t)

	_, err := fx.svc.Place(context.Background(), fx.productID, uuid.New(), nil)
	if !domain.IsCode(err, domain.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCompleteOrder(t *testing.T) {
	fx := newOrderFixture(t)
	ctx := context.Background()

	o, err := fx.svc.Place(ctx, fx.productID, fx.customerID, nil)
	if err != nil {
		t.Fatalf("place order: %v", err)
	}

	done, err := fx.svc.Complete(ctx, o.ID().UUID())
	if err != nil {
		t.Fatalf("complete order: %v", err)
	}
	if done.Status() != orderagg.StatusComplete {
		t.Fatalf("expected complete, got %s", done.Status())
	}
	if done.UpdatedDate() == nil || !done.UpdatedDate().Time().Equal(testNow) {
		t.Fatalf("expected updated date %v, got %v", testNow, done.UpdatedDate())
	}
	if got := countEvents(t, fx.svc, o.ID().UUID()); got != 2 {
		t.Fatalf("expected 2 events, got %d", got)
	}
}

func TestCompleteTwiceConflicts(t *testing.T) {
	fx := newOrderFixture(t)
	ctx := context.Background()

	o, err := fx.svc.Place(ctx, fx.productID, fx.customerID, nil)
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if _, err := fx.svc.Complete(ctx, o.ID().UUID()); err != nil {
		t.Fatalf("complete order: %v", err)
	}

	_, err = fx.svc.Complete(ctx, o.ID().UUID())
	if !domain.IsCode(err, domain.CodeConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestCancelAfterComplete(t *testing.T) {
	fx := newOrderFixture(t)
	ctx := context.Background()

	o, err := fx.svc.Place(ctx, fx.productID, fx.customerID, nil)
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if _, err := fx.svc.Complete(ctx, o.ID().UUID()); err != nil {
		t.Fatalf("complete order: %v", err)
	}

	cancelled, err := fx.svc.Cancel(ctx, o.ID().UUID())
	if err != nil {
		t.Fatalf("cancel after complete: %v", err)
	}
	if cancelled.Status() != orderagg.StatusCancelled {
		t.Fatalf("expected cancelled, got %s", cancelled.Status())
	}
}

func TestFailedTransitionWritesNoEvent(t *testing.T) {
	fx := newOrderFixture(t)
	ctx := context.Background()

	o, err := fx.svc.Place(ctx, fx.productID, fx.customerID, nil)
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if _, err := fx.svc.Cancel(ctx, o.ID().UUID()); err != nil {
		t.Fatalf("cancel order: %v", err)
	}
	if _, err := fx.svc.Cancel(ctx, o.ID().UUID()); err == nil {
		t.Fatal("expected second cancel to fail")
	}

	if got := countEvents(t, fx.svc, o.ID().UUID()); got != 2 {
		t.Fatalf("expected 2 events, got %d", got)
	}
}
