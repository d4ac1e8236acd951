package services

import (
	"context"
	"testing"
	"time"

	productrepo "github.com/avenlyn/commerce-backend/internal/data/repos/product"
	"github.com/avenlyn/commerce-backend/internal/data/repos/testutil"
	"github.com/avenlyn/commerce-backend/internal/domain"
)

// memCache is an in-process stand-in for the redis cache.
type memCache struct {
	entries map[string][]byte
	gets    int
	hits    int
}

func newMemCache() *memCache {
	return &memCache{entries: map[string][]byte{}}
}

func (m *memCache) Get(_ context.Context, key string) ([]byte, bool) {
	m.gets++
	raw, ok := m.entries[key]
	if ok {
		m.hits++
	}
	return raw, ok
}

func (m *memCache) Set(_ context.Context, key string, val []byte, _ time.Duration) {
	m.entries[key] = val
}

func (m *memCache) Delete(_ context.Context, keys ...string) {
	for _, key := range keys {
		delete(m.entries, key)
	}
}

func (m *memCache) Close() error { return nil }

func newProductFixture(t *testing.T, cache *memCache) ProductService {
	t.Helper()
	tx := testutil.Tx(t, testutil.DB(t))
	log := testutil.Logger(t)
	repo := productrepo.NewProductRepo(tx, log)
	if cache == nil {
		return NewProductService(tx, log, repo, nil)
	}
	return NewProductService(tx, log, repo, cache)
}

func TestCreateProduct(t *testing.T) {
	svc := newProductFixture(t, nil)

	p, err := svc.Create(context.Background(), "Widget 2000", "A sturdy widget for daily use.", "CP001")
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	if p.SKU().String() != "CP001" {
		t.Fatalf("sku mismatch: %s", p.SKU())
	}
}

func TestCreateProductDuplicateSKU(t *testing.T) {
	svc := newProductFixture(t, nil)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "Widget 2000", "A sturdy widget for daily use.", "DS001"); err != nil {
		t.Fatalf("create product: %v", err)
	}

	_, err := svc.Create(ctx, "Widget 3000", "Another sturdy widget entirely.", "DS001")
	if !domain.IsCode(err, domain.CodeConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestCreateProductInvalidSKU(t *testing.T) {
	svc := newProductFixture(t, nil)

	_, err := svc.Create(context.Background(), "Widget 2000", "A sturdy widget for daily use.", "AB12")
	if !domain.IsCode(err, domain.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGetByIDPopulatesCache(t *testing.T) {
	cache := newMemCache()
	svc := newProductFixture(t, cache)
	ctx := context.Background()

	p, err := svc.Create(ctx, "Widget 2000", "A sturdy widget for daily use.", "CA001")
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	id := p.ID().UUID()

	if _, err := svc.GetByID(ctx, id); err != nil {
		t.Fatalf("first get: %v", err)
	}
	if cache.hits != 0 {
		t.Fatalf("expected cold cache, got %d hits", cache.hits)
	}

	got, err := svc.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if cache.hits != 1 {
		t.Fatalf("expected 1 cache hit, got %d", cache.hits)
	}
	if got.SKU().String() != "CA001" {
		t.Fatalf("sku mismatch from cache: %s", got.SKU())
	}
}

func TestChangeInvalidatesCache(t *testing.T) {
	cache := newMemCache()
	svc := newProductFixture(t, cache)
	ctx := context.Background()

	p, err := svc.Create(ctx, "Widget 2000", "A sturdy widget for daily use.", "CI001")
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	id := p.ID().UUID()

	if _, err := svc.GetByID(ctx, id); err != nil {
		t.Fatalf("warm cache: %v", err)
	}
	if _, err := svc.ChangeName(ctx, id, "Widget 3000"); err != nil {
		t.Fatalf("change name: %v", err)
	}

	got, err := svc.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get after change: %v", err)
	}
	if got.Name().String() != "Widget 3000" {
		t.Fatalf("expected fresh name, got %s", got.Name())
	}
}

func TestChangeSKUConflicts(t *testing.T) {
	svc := newProductFixture(t, nil)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "Widget 2000", "A sturdy widget for daily use.", "SK001"); err != nil {
		t.Fatalf("create product: %v", err)
	}
	p, err := svc.Create(ctx, "Widget 3000", "Another sturdy widget entirely.", "SK002")
	if err != nil {
		t.Fatalf("create product: %v", err)
	}

	_, err = svc.ChangeSKU(ctx, p.ID().UUID(), "SK001")
	if !domain.IsCode(err, domain.CodeConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}
