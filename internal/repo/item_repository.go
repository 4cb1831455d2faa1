package repo

import (
	"context"
	"errors"

	"github.com/stocktrack/inventory-api/internal/models"
)

// ErrItemNotFound is returned when an operation targets an id with no row.
// Deleting an absent id reports this error too; callers treat it as a signal,
// not a fault.
var ErrItemNotFound = errors.New("item not found")

// ErrDuplicateID is returned when a create collides with an existing id.
var ErrDuplicateID = errors.New("item id already exists")

// ItemRepository defines the interface for inventory item data operations.
type ItemRepository interface {
	Create(ctx context.Context, item models.Item) (models.Item, error)
	GetAll(ctx context.Context) ([]models.Item, error)
	GetByID(ctx context.Context, id string) (models.Item, error)
	Update(ctx context.Context, id string, patch models.ItemPatch) (models.Item, error)
	Delete(ctx context.Context, id string) error
	Filter(ctx context.Context, filter ItemFilter) ([]models.Item, int, error)
}
