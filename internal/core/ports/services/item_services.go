package services

import (
	"context"

	"github.com/pharmastock/pharmastock_backend/internal/core/domain"
	"github.com/pharmastock/pharmastock_backend/internal/dto"
)

// ItemSvcFacade defines the inventory operations exposed to handlers.
type ItemSvcFacade interface {
	// CreateItem validates the request, assigns an ID and inserts the item
	// into the inventory ledger with its stock status derived from the
	// supplied current stock.
	CreateItem(ctx context.Context, req dto.CreateItemRequest, creatorUserID string) (*domain.Item, error)

	// GetItemByID retrieves a single item.
	GetItemByID(ctx context.Context, itemID string) (*domain.Item, error)

	// ListItems returns the item collection filtered and sorted per params.
	ListItems(ctx context.Context, params dto.ListItemsParams) ([]domain.Item, error)

	// UpdateItem replaces an existing item's descriptive fields.
	UpdateItem(ctx context.Context, itemID string, req dto.UpdateItemRequest, updaterUserID string) (*domain.Item, error)

	// DeleteItem removes an item from the ledger. Historical transactions
	// keep their itemID references.
	DeleteItem(ctx context.Context, itemID string) error

	// AdjustStock applies a manual stock adjustment and returns the updated item.
	AdjustStock(ctx context.Context, itemID string, req dto.AdjustStockRequest, updaterUserID string) (*domain.Item, error)
}
