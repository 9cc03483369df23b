package memory

import (
	"context"
	"sync"

	"github.com/pharmastock/pharmastock_backend/internal/apperrors"
	"github.com/pharmastock/pharmastock_backend/internal/core/domain"
	portsrepo "github.com/pharmastock/pharmastock_backend/internal/core/ports/repositories"
)

// ItemRepository is the in-memory inventory ledger. It owns the authoritative
// current stock and derived stock status for every item. State is transient;
// there is no durability beyond the process lifetime.
//
// A single RWMutex guards the maps because gin serves each request on its own
// goroutine; every mutation recomputes the stock status before the lock is
// released, so no caller can observe a count/status mismatch.
type ItemRepository struct {
	mu    sync.RWMutex
	items map[string]domain.Item
	order []string // Insertion order, the default display order
}

// NewItemRepository creates an empty inventory ledger.
func NewItemRepository() *ItemRepository {
	return &ItemRepository{
		items: make(map[string]domain.Item),
	}
}

// Ensure ItemRepository implements the repository facade.
var _ portsrepo.ItemRepositoryFacade = (*ItemRepository)(nil)

// SaveItem inserts a new item. The ledger recomputes StockStatus from
// CurrentStock regardless of what the caller supplied, so the classification
// invariant holds from the moment of insertion.
func (r *ItemRepository) SaveItem(ctx context.Context, item domain.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ItemID]; exists {
		return apperrors.ErrDuplicate
	}

	item.StockStatus = domain.StatusForStock(item.CurrentStock)
	r.items[item.ItemID] = item
	r.order = append(r.order, item.ItemID)
	return nil
}

// UpdateItem replaces an existing item's fields by ID, recomputing the status.
func (r *ItemRepository) UpdateItem(ctx context.Context, item domain.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ItemID]; !exists {
		return apperrors.ErrNotFound
	}

	item.StockStatus = domain.StatusForStock(item.CurrentStock)
	r.items[item.ItemID] = item
	return nil
}

// DeleteItem removes the item. Historical transactions referencing the item
// are deliberately left alone; orphaned itemID references are accepted.
func (r *ItemRepository) DeleteItem(ctx context.Context, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[itemID]; !exists {
		return apperrors.ErrNotFound
	}

	delete(r.items, itemID)
	for i, id := range r.order {
		if id == itemID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// AdjustStock moves CurrentStock by delta in the given direction.
// Subtraction saturates at zero: a delta larger than the current stock leaves
// the item at zero rather than failing. The stock status is recomputed under
// the same lock as the count change.
func (r *ItemRepository) AdjustStock(ctx context.Context, itemID string, delta int, direction domain.StockDirection) (*domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, exists := r.items[itemID]
	if !exists {
		return nil, apperrors.ErrNotFound
	}

	switch direction {
	case domain.StockAdd:
		item.CurrentStock += delta
	case domain.StockSubtract:
		item.CurrentStock -= delta
		if item.CurrentStock < 0 {
			item.CurrentStock = 0
		}
	default:
		return nil, apperrors.ErrValidation
	}

	item.StockStatus = domain.StatusForStock(item.CurrentStock)
	r.items[itemID] = item

	updated := item
	return &updated, nil
}

// FindItemByID retrieves a copy of a specific item.
func (r *ItemRepository) FindItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[itemID]
	if !exists {
		return nil, apperrors.ErrNotFound
	}
	found := item
	return &found, nil
}

// ListItems returns a cloned snapshot in insertion order so callers cannot
// mutate ledger state through the returned slice.
func (r *ItemRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]domain.Item, 0, len(r.order))
	for _, id := range r.order {
		items = append(items, r.items[id])
	}
	return items, nil
}
