package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/shopspring/decimal"

	api "github.com/stocktrack/inventory-api/internal/http"
	handler "github.com/stocktrack/inventory-api/internal/http/handlers"
	"github.com/stocktrack/inventory-api/internal/models"
	"github.com/stocktrack/inventory-api/internal/repo"
)

var itemRepo *repo.InMemoryItemRepository

func init() {
	itemRepo = repo.NewInMemoryItemRepository()
	handler.SetItemRepo(itemRepo)
}

func clearAllItems() {
	itemRepo.Clear()
}

// sampleItem returns a fully populated, valid item payload.
func sampleItem(id string) models.Item {
	return models.Item{
		ID:             id,
		Name:           "Paracetamol 500mg",
		Category:       "Medicine",
		Quantity:       50,
		Unit:           "box",
		ExpirationDate: "2027-06-30",
		Supplier:       "Acme Wholesale",
		Price:          decimal.NewFromFloat(12.50),
		SKU:            "MED-001",
		ReorderLevel:   10,
		BatchNumber:    "B-778",
	}
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createItem(r http.Handler, item models.Item) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/api/items", item)
}

func getItem(r http.Handler, id string) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodGet, "/api/items/"+id, nil)
}

func updateItem(r http.Handler, id string, patch map[string]any) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPut, "/api/items/"+id, patch)
}

func deleteItem(r http.Handler, id string) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodDelete, "/api/items/"+id, nil)
}

func newRouter() http.Handler {
	return api.NewRouter()
}
