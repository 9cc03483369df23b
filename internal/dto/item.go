package dto

import (
	"time"

	"github.com/pharmastock/pharmastock_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateItemRequest defines the data needed to create a new inventory item.
// Name, category and expiry date are required; the rest is optional context.
type CreateItemRequest struct {
	Name            string          `json:"name" binding:"required"`
	Category        domain.ItemCategory `json:"category" binding:"required,oneof=tablets syrups ointments drugs syringes glucose-water other"`
	ManufactureDate *time.Time      `json:"manufactureDate"`
	ExpiryDate      time.Time       `json:"expiryDate" binding:"required"`
	Price           decimal.Decimal `json:"price"`
	Quantity        int             `json:"quantity" binding:"gte=0"`
	CurrentStock    int             `json:"currentStock" binding:"gte=0"`
	Description     string          `json:"description"`
	Manufacturer    string          `json:"manufacturer"`
	BatchNumber     string          `json:"batchNumber"`
}

// UpdateItemRequest defines the full-replace update payload for an item.
// CurrentStock is accepted here because the original edit dialog allows
// correcting it; the ledger still recomputes the stock status itself.
type UpdateItemRequest struct {
	Name            string          `json:"name" binding:"required"`
	Category        domain.ItemCategory `json:"category" binding:"required,oneof=tablets syrups ointments drugs syringes glucose-water other"`
	ManufactureDate *time.Time      `json:"manufactureDate"`
	ExpiryDate      time.Time       `json:"expiryDate" binding:"required"`
	Price           decimal.Decimal `json:"price"`
	CurrentStock    int             `json:"currentStock" binding:"gte=0"`
	Description     string          `json:"description"`
	Manufacturer    string          `json:"manufacturer"`
	BatchNumber     string          `json:"batchNumber"`
}

// AdjustStockRequest defines a manual stock adjustment.
type AdjustStockRequest struct {
	Quantity  int                   `json:"quantity" binding:"required,gt=0"`
	Direction domain.StockDirection `json:"direction" binding:"required,oneof=add subtract"`
}

// ListItemsParams defines query parameters for listing items.
// Filtering and sorting are projections over the raw collection.
type ListItemsParams struct {
	Category  string `form:"category"`
	Search    string `form:"search"`
	SortBy    string `form:"sortBy,default=name" binding:"omitempty,oneof=name expiryDate stockStatus price"`
	SortOrder string `form:"sortOrder,default=asc" binding:"omitempty,oneof=asc desc"`
}

// ItemResponse defines the data returned for an item. Mirrors domain.Item.
type ItemResponse struct {
	ItemID          string             `json:"itemID"`
	Name            string             `json:"name"`
	Category        domain.ItemCategory `json:"category"`
	ManufactureDate time.Time          `json:"manufactureDate"`
	ExpiryDate      time.Time          `json:"expiryDate"`
	Price           decimal.Decimal    `json:"price"`
	Quantity        int                `json:"quantity"`
	CurrentStock    int                `json:"currentStock"`
	StockStatus     domain.StockStatus `json:"stockStatus"`
	Description     string             `json:"description"`
	Manufacturer    string             `json:"manufacturer"`
	BatchNumber     string             `json:"batchNumber"`
	CreatedAt       time.Time          `json:"createdAt"`
	LastUpdatedAt   time.Time          `json:"lastUpdatedAt"`
}

// ListItemsResponse wraps the list of items.
type ListItemsResponse struct {
	Items []ItemResponse `json:"items"`
}

// ToItemResponse converts a domain.Item to ItemResponse DTO.
func ToItemResponse(item *domain.Item) ItemResponse {
	return ItemResponse{
		ItemID:          item.ItemID,
		Name:            item.Name,
		Category:        item.Category,
		ManufactureDate: item.ManufactureDate,
		ExpiryDate:      item.ExpiryDate,
		Price:           item.Price,
		Quantity:        item.Quantity,
		CurrentStock:    item.CurrentStock,
		StockStatus:     item.StockStatus,
		Description:     item.Description,
		Manufacturer:    item.Manufacturer,
		BatchNumber:     item.BatchNumber,
		CreatedAt:       item.CreatedAt,
		LastUpdatedAt:   item.LastUpdatedAt,
	}
}

// ToListItemsResponse converts a slice of domain.Item to the list DTO.
func ToListItemsResponse(items []domain.Item) ListItemsResponse {
	res := ListItemsResponse{Items: make([]ItemResponse, len(items))}
	for i, item := range items {
		res.Items[i] = ToItemResponse(&item)
	}
	return res
}
