package repo

import (
	"context"
	"strings"
	"sync"

	"github.com/stocktrack/inventory-api/internal/models"
)

// InMemoryItemRepository is an in-memory implementation of ItemRepository,
// used by the handler test suites.
type InMemoryItemRepository struct {
	mu    sync.Mutex
	items []models.Item
}

// NewInMemoryItemRepository creates a new instance of InMemoryItemRepository.
func NewInMemoryItemRepository() *InMemoryItemRepository {
	return &InMemoryItemRepository{items: []models.Item{}}
}

// Create adds a new item, rejecting duplicate ids.
func (r *InMemoryItemRepository) Create(_ context.Context, item models.Item) (models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.ID == item.ID {
			return models.Item{}, ErrDuplicateID
		}
	}
	r.items = append(r.items, item)
	return item, nil
}

// GetAll retrieves all items. The result is never nil.
func (r *InMemoryItemRepository) GetAll(_ context.Context) ([]models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]models.Item, len(r.items))
	copy(items, r.items)
	return items, nil
}

// GetByID retrieves an item by its id.
func (r *InMemoryItemRepository) GetByID(_ context.Context, id string) (models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range r.items {
		if item.ID == id {
			return item, nil
		}
	}
	return models.Item{}, ErrItemNotFound
}

// Update applies the non-nil patch fields to an existing item. The stored id
// is never touched.
func (r *InMemoryItemRepository) Update(_ context.Context, id string, patch models.ItemPatch) (models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, item := range r.items {
		if item.ID == id {
			r.items[i] = patch.Apply(item)
			return r.items[i], nil
		}
	}
	return models.Item{}, ErrItemNotFound
}

// Delete removes an item by its id.
func (r *InMemoryItemRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, item := range r.items {
		if item.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

func matchesFilter(item models.Item, f ItemFilter) bool {
	if f.Name != "" && !strings.Contains(strings.ToLower(item.Name), strings.ToLower(f.Name)) {
		return false
	}
	if f.Category != "" && item.Category != f.Category {
		return false
	}
	if f.MinQty != nil && item.Quantity < *f.MinQty {
		return false
	}
	if f.MaxQty != nil && item.Quantity > *f.MaxQty {
		return false
	}
	price := item.Price.InexactFloat64()
	if f.MinPrice != nil && price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && price > *f.MaxPrice {
		return false
	}
	return true
}

// Filter returns the matching page plus the total match count.
func (r *InMemoryItemRepository) Filter(_ context.Context, f ItemFilter) ([]models.Item, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	filtered := []models.Item{}
	for _, item := range r.items {
		if matchesFilter(item, f) {
			filtered = append(filtered, item)
		}
	}

	start := 0
	if f.Offset != nil {
		start = clamp(*f.Offset, 0, len(filtered))
	}
	end := len(filtered)
	if f.Limit != nil && *f.Limit > 0 {
		end = clamp(start+*f.Limit, start, len(filtered))
	}

	return filtered[start:end], len(filtered), nil
}

// Clear resets the repository between tests.
func (r *InMemoryItemRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = []models.Item{}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
