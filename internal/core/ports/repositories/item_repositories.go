package repositories

import (
	"context"

	"github.com/pharmastock/pharmastock_backend/internal/core/domain"
)

// ItemReader defines read operations over the inventory ledger.
type ItemReader interface {
	// FindItemByID retrieves a specific item by its unique identifier.
	FindItemByID(ctx context.Context, itemID string) (*domain.Item, error)

	// ListItems returns a snapshot of every stocked item in insertion order.
	ListItems(ctx context.Context) ([]domain.Item, error)
}

// ItemWriter defines write operations over the inventory ledger.
// Every mutation leaves the item's StockStatus consistent with its
// CurrentStock before the call returns.
type ItemWriter interface {
	// SaveItem persists a new item. The ledger recomputes StockStatus from
	// CurrentStock on insertion regardless of what the caller supplied.
	SaveItem(ctx context.Context, item domain.Item) error

	// UpdateItem replaces an existing item's fields by ID.
	UpdateItem(ctx context.Context, item domain.Item) error

	// DeleteItem removes the item. Historical transactions referencing it
	// are left untouched.
	DeleteItem(ctx context.Context, itemID string) error

	// AdjustStock moves CurrentStock by delta in the given direction and
	// returns the updated item. Subtraction saturates at zero.
	AdjustStock(ctx context.Context, itemID string, delta int, direction domain.StockDirection) (*domain.Item, error)
}

// ItemRepositoryFacade combines all inventory-ledger repository interfaces.
type ItemRepositoryFacade interface {
	ItemReader
	ItemWriter
}
