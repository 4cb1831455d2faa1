package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/stocktrack/inventory-api/internal/models"
)

func testItem(id string) models.Item {
	return models.Item{
		ID:             id,
		Name:           "Widget",
		Category:       "Misc",
		Quantity:       10,
		Unit:           "pc",
		ExpirationDate: "2027-01-31",
		Supplier:       "Acme",
		Price:          decimal.NewFromFloat(5.00),
		SKU:            "W-1",
		ReorderLevel:   20,
		BatchNumber:    "B-1",
	}
}

func TestInMemoryCreateAndGet(t *testing.T) {
	r := NewInMemoryItemRepository()
	ctx := context.Background()

	created, err := r.Create(ctx, testItem("P1"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := r.GetByID(ctx, "P1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != created {
		t.Errorf("round-trip mismatch: got %+v, want %+v", got, created)
	}
}

func TestInMemoryCreateDuplicate(t *testing.T) {
	r := NewInMemoryItemRepository()
	ctx := context.Background()

	original := testItem("P1")
	if _, err := r.Create(ctx, original); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	duplicate := testItem("P1")
	duplicate.Name = "Impostor"
	if _, err := r.Create(ctx, duplicate); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}

	got, err := r.GetByID(ctx, "P1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != original.Name {
		t.Errorf("failed create must leave the existing record unchanged, got name %q", got.Name)
	}
}

func TestInMemoryGetAllEmpty(t *testing.T) {
	r := NewInMemoryItemRepository()

	items, err := r.GetAll(context.Background())
	if err != nil {
		t.Fatalf("get all failed: %v", err)
	}
	if items == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(items) != 0 {
		t.Fatalf("expected no items, got %d", len(items))
	}
}

func TestInMemoryUpdatePartial(t *testing.T) {
	r := NewInMemoryItemRepository()
	ctx := context.Background()

	original := testItem("P1")
	if _, err := r.Create(ctx, original); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	qty := 5
	updated, err := r.Update(ctx, "P1", models.ItemPatch{Quantity: &qty})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if updated.Quantity != 5 {
		t.Errorf("expected quantity 5, got %d", updated.Quantity)
	}
	if updated.Name != original.Name || updated.Supplier != original.Supplier ||
		!updated.Price.Equal(original.Price) || updated.ReorderLevel != original.ReorderLevel {
		t.Errorf("partial update touched unrelated fields: %+v", updated)
	}
}

func TestInMemoryUpdateIgnoresPayloadID(t *testing.T) {
	r := NewInMemoryItemRepository()
	ctx := context.Background()

	if _, err := r.Create(ctx, testItem("P1")); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	other := "P2"
	updated, err := r.Update(ctx, "P1", models.ItemPatch{ID: &other})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ID != "P1" {
		t.Errorf("patch id must never overwrite the row id, got %q", updated.ID)
	}
}

func TestInMemoryUpdateNotFound(t *testing.T) {
	r := NewInMemoryItemRepository()

	qty := 5
	if _, err := r.Update(context.Background(), "missing", models.ItemPatch{Quantity: &qty}); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestInMemoryDelete(t *testing.T) {
	r := NewInMemoryItemRepository()
	ctx := context.Background()

	if _, err := r.Create(ctx, testItem("P1")); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := r.Delete(ctx, "P1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := r.GetByID(ctx, "P1"); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound after delete, got %v", err)
	}
	// Deleting an absent id reports not-found rather than raising.
	if err := r.Delete(ctx, "P1"); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound for absent id, got %v", err)
	}
}

func TestInMemoryFilter(t *testing.T) {
	r := NewInMemoryItemRepository()
	ctx := context.Background()

	cheap := testItem("P1")
	pricey := testItem("P2")
	pricey.Name = "Gadget"
	pricey.Category = "Electronics"
	pricey.Price = decimal.NewFromFloat(99.90)
	pricey.Quantity = 3
	for _, item := range []models.Item{cheap, pricey} {
		if _, err := r.Create(ctx, item); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	minPrice := 50.0
	items, total, err := r.Filter(ctx, ItemFilter{MinPrice: &minPrice})
	if err != nil {
		t.Fatalf("filter failed: %v", err)
	}
	if total != 1 || len(items) != 1 || items[0].ID != "P2" {
		t.Errorf("expected only P2 above 50.0, got %+v (total %d)", items, total)
	}

	limit := 1
	items, total, err = r.Filter(ctx, ItemFilter{Limit: &limit})
	if err != nil {
		t.Fatalf("filter failed: %v", err)
	}
	if total != 2 || len(items) != 1 {
		t.Errorf("expected page of 1 out of 2, got %d of %d", len(items), total)
	}
}
