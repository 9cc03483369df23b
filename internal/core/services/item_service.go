package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pharmastock/pharmastock_backend/internal/apperrors"
	"github.com/pharmastock/pharmastock_backend/internal/core/domain"
	portsrepo "github.com/pharmastock/pharmastock_backend/internal/core/ports/repositories"
	portssvc "github.com/pharmastock/pharmastock_backend/internal/core/ports/services"
	"github.com/pharmastock/pharmastock_backend/internal/dto"
)

// itemService implements the inventory operations on top of the item ledger.
type itemService struct {
	BaseService
	itemRepo portsrepo.ItemRepositoryFacade
}

// NewItemService creates a new item service.
func NewItemService(itemRepo portsrepo.ItemRepositoryFacade) portssvc.ItemSvcFacade {
	return &itemService{
		itemRepo: itemRepo,
	}
}

var _ portssvc.ItemSvcFacade = (*itemService)(nil)

// stockStatusRank orders statuses from most to least urgent for sorting.
var stockStatusRank = map[domain.StockStatus]int{
	domain.OutOfStock: 0,
	domain.LowStock:   1,
	domain.InStock:    2,
}

func (s *itemService) CreateItem(ctx context.Context, req dto.CreateItemRequest, creatorUserID string) (*domain.Item, error) {
	logger := s.GetLogger(ctx)

	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	var manufactureDate time.Time
	if req.ManufactureDate != nil {
		manufactureDate = *req.ManufactureDate
	}

	item := domain.Item{
		ItemID:          uuid.NewString(),
		Name:            req.Name,
		Category:        req.Category,
		ManufactureDate: manufactureDate,
		ExpiryDate:      req.ExpiryDate,
		Price:           req.Price,
		Quantity:        req.Quantity,
		CurrentStock:    req.CurrentStock,
		StockStatus:     domain.StatusForStock(req.CurrentStock),
		Description:     req.Description,
		Manufacturer:    req.Manufacturer,
		BatchNumber:     req.BatchNumber,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.itemRepo.SaveItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to save item", "item_name", req.Name)
		return nil, fmt.Errorf("failed to save item: %w", err)
	}

	logger.Info("Item created", "item_id", item.ItemID, "item_name", item.Name)
	return &item, nil
}

func (s *itemService) GetItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	item, err := s.itemRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to find item %s: %w", itemID, err)
	}
	return item, nil
}

func (s *itemService) ListItems(ctx context.Context, params dto.ListItemsParams) ([]domain.Item, error) {
	items, err := s.itemRepo.ListItems(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list items")
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	filtered := filterItems(items, params)
	sortItems(filtered, params)
	return filtered, nil
}

// filterItems applies the category and free-text filters without mutating
// the ledger snapshot.
func filterItems(items []domain.Item, params dto.ListItemsParams) []domain.Item {
	filtered := make([]domain.Item, 0, len(items))
	search := strings.ToLower(strings.TrimSpace(params.Search))
	for _, item := range items {
		if params.Category != "" && string(item.Category) != params.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(item.Name), search) &&
			!strings.Contains(strings.ToLower(item.Description), search) &&
			!strings.Contains(strings.ToLower(item.Manufacturer), search) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

func sortItems(items []domain.Item, params dto.ListItemsParams) {
	less := func(a, b domain.Item) bool {
		switch params.SortBy {
		case "expiryDate":
			return a.ExpiryDate.Before(b.ExpiryDate)
		case "stockStatus":
			if stockStatusRank[a.StockStatus] != stockStatusRank[b.StockStatus] {
				return stockStatusRank[a.StockStatus] < stockStatusRank[b.StockStatus]
			}
			return a.CurrentStock < b.CurrentStock
		case "price":
			return a.Price.LessThan(b.Price)
		default: // name
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if params.SortOrder == "desc" {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}

func (s *itemService) UpdateItem(ctx context.Context, itemID string, req dto.UpdateItemRequest, updaterUserID string) (*domain.Item, error) {
	logger := s.GetLogger(ctx)

	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", apperrors.ErrValidation)
	}

	existing, err := s.itemRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to find item %s for update: %w", itemID, err)
	}

	updated := *existing
	updated.Name = req.Name
	updated.Category = req.Category
	if req.ManufactureDate != nil {
		updated.ManufactureDate = *req.ManufactureDate
	}
	updated.ExpiryDate = req.ExpiryDate
	updated.Price = req.Price
	updated.CurrentStock = req.CurrentStock
	updated.StockStatus = domain.StatusForStock(req.CurrentStock)
	updated.Description = req.Description
	updated.Manufacturer = req.Manufacturer
	updated.BatchNumber = req.BatchNumber
	updated.LastUpdatedAt = time.Now()
	updated.LastUpdatedBy = updaterUserID

	if err := s.itemRepo.UpdateItem(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update item", "item_id", itemID)
		return nil, fmt.Errorf("failed to update item %s: %w", itemID, err)
	}

	logger.Info("Item updated", "item_id", itemID)
	return &updated, nil
}

func (s *itemService) DeleteItem(ctx context.Context, itemID string) error {
	logger := s.GetLogger(ctx)

	if err := s.itemRepo.DeleteItem(ctx, itemID); err != nil {
		s.LogError(ctx, err, "Failed to delete item", "item_id", itemID)
		return fmt.Errorf("failed to delete item %s: %w", itemID, err)
	}

	logger.Info("Item deleted", "item_id", itemID)
	return nil
}

func (s *itemService) AdjustStock(ctx context.Context, itemID string, req dto.AdjustStockRequest, updaterUserID string) (*domain.Item, error) {
	logger := s.GetLogger(ctx)

	updated, err := s.itemRepo.AdjustStock(ctx, itemID, req.Quantity, req.Direction)
	if err != nil {
		s.LogError(ctx, err, "Failed to adjust stock", "item_id", itemID)
		return nil, fmt.Errorf("failed to adjust stock for item %s: %w", itemID, err)
	}

	logger.Info("Stock adjusted",
		"item_id", itemID,
		"direction", string(req.Direction),
		"quantity", req.Quantity,
		"current_stock", updated.CurrentStock,
		"stock_status", string(updated.StockStatus),
	)
	return updated, nil
}
