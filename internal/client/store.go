package client

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stocktrack/inventory-api/internal/models"
	"github.com/stocktrack/inventory-api/internal/report"
)

// ErrMutationInFlight is returned when a second mutation targets an item that
// already has an unresolved request, mirroring the UI rule of disabling the
// triggering control until the in-flight request settles.
var ErrMutationInFlight = errors.New("a mutation for this item is already in flight")

// Store owns the canonical local copy of the item list. Each mutation runs
// idle -> submitted -> confirmed or failed: the local list changes only once
// the backend has confirmed the write, and a failed request leaves the list
// exactly as it was.
type Store struct {
	api *Client

	mu       sync.Mutex
	items    []models.Item
	inflight map[string]bool
}

// NewStore creates a store backed by the given API client. Call Load before
// reading items.
func NewStore(api *Client) *Store {
	return &Store{
		api:      api,
		items:    []models.Item{},
		inflight: map[string]bool{},
	}
}

// Load replaces the local list with the backend's, the once-at-startup fetch.
func (s *Store) Load(ctx context.Context) error {
	items, err := s.api.ListItems(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	return nil
}

// Items returns a copy of the local list.
func (s *Store) Items() []models.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.Item, len(s.items))
	copy(items, s.items)
	return items
}

// Get returns the local copy of one item.
func (s *Store) Get(id string) (models.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return models.Item{}, false
}

func (s *Store) begin(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inflight[id] {
		return ErrMutationInFlight
	}
	s.inflight[id] = true
	return nil
}

func (s *Store) settle(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, id)
}

// Create assigns a fresh id to the given fields, persists the item and appends
// it locally once the backend confirms. On failure the local list is
// untouched.
func (s *Store) Create(ctx context.Context, fields models.Item) (models.Item, error) {
	fields.ID = uuid.NewString()

	if err := s.begin(fields.ID); err != nil {
		return models.Item{}, err
	}
	defer s.settle(fields.ID)

	created, err := s.api.CreateItem(ctx, fields)
	if err != nil {
		return models.Item{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, created)
	return created, nil
}

// Update sends the full updated record and replaces the matching local entry
// only after the backend accepts it; on failure the previous record survives.
func (s *Store) Update(ctx context.Context, item models.Item) (models.Item, error) {
	if err := s.begin(item.ID); err != nil {
		return models.Item{}, err
	}
	defer s.settle(item.ID)

	updated, err := s.api.UpdateItem(ctx, item)
	if err != nil {
		return models.Item{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.items {
		if existing.ID == updated.ID {
			s.items[i] = updated
			break
		}
	}
	return updated, nil
}

// Delete removes the local entry only after the backend confirms the
// deletion, so a failed request never makes an item vanish from the list just
// to reappear on the next refresh.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.begin(id); err != nil {
		return err
	}
	defer s.settle(id)

	if err := s.api.DeleteItem(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.items {
		if existing.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	return nil
}

// Search filters the local list by case-insensitive name substring and exact
// category, the way the list view filters in the browser.
func (s *Store) Search(name, category string) []models.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := []models.Item{}
	for _, item := range s.items {
		if name != "" && !strings.Contains(strings.ToLower(item.Name), strings.ToLower(name)) {
			continue
		}
		if category != "" && item.Category != category {
			continue
		}
		matched = append(matched, item)
	}
	return matched
}

// Dashboard computes the dashboard summary from the local list.
func (s *Store) Dashboard(now time.Time) report.Summary {
	return report.Summarize(s.Items(), now)
}

// LowStock returns the locally known items at or below their reorder level.
func (s *Store) LowStock() []models.Item {
	matched := []models.Item{}
	for _, item := range s.Items() {
		if report.LowStock(item) {
			matched = append(matched, item)
		}
	}
	return matched
}

// ExpiringSoon returns the locally known items expiring within the horizon.
func (s *Store) ExpiringSoon(now time.Time) []models.Item {
	matched := []models.Item{}
	for _, item := range s.Items() {
		if report.ExpiringSoon(item, now) {
			matched = append(matched, item)
		}
	}
	return matched
}
