package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stocktrack/inventory-api/internal/report"
)

func TestGetDashboardHandler(t *testing.T) {
	t.Cleanup(clearAllItems)
	r := newRouter()

	lowStock := sampleItem("P1")
	lowStock.Quantity = 10
	lowStock.ReorderLevel = 10
	lowStock.ExpirationDate = time.Now().AddDate(2, 0, 0).Format("2006-01-02")

	healthy := sampleItem("P2")
	healthy.Category = "Supplies"
	healthy.Quantity = 100
	healthy.ReorderLevel = 10
	healthy.ExpirationDate = time.Now().AddDate(0, 0, 30).Format("2006-01-02")

	if w := createItem(r, lowStock); w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}
	if w := createItem(r, healthy); w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	w := doJSON(r, http.MethodGet, "/api/dashboard", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var summary report.Summary
	if err := json.NewDecoder(w.Body).Decode(&summary); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if summary.TotalItems != 2 {
		t.Errorf("expected 2 items, got %d", summary.TotalItems)
	}
	if summary.TotalStockUnits != 110 {
		t.Errorf("expected 110 stock units, got %d", summary.TotalStockUnits)
	}
	if summary.LowStockCount != 1 || len(summary.LowStockIDs) != 1 || summary.LowStockIDs[0] != "P1" {
		t.Errorf("expected P1 to be the only low-stock item, got %+v", summary)
	}
	if summary.Categories["Medicine"] != 1 || summary.Categories["Supplies"] != 1 {
		t.Errorf("unexpected category aggregation: %+v", summary.Categories)
	}
	if summary.ExpiringSoonCount != 1 || summary.ExpiringSoonIDs[0] != "P2" {
		t.Errorf("expected P2 to be expiring soon, got %+v", summary)
	}
}
