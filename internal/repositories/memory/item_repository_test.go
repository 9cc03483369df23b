package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmastock/pharmastock_backend/internal/apperrors"
	"github.com/pharmastock/pharmastock_backend/internal/core/domain"
	"github.com/pharmastock/pharmastock_backend/internal/repositories/memory"
)

func newTestItem(id string, stock int) domain.Item {
	return domain.Item{
		ItemID:       id,
		Name:         "Test Item " + id,
		Category:     domain.CategoryTablets,
		ExpiryDate:   time.Now().AddDate(1, 0, 0),
		Price:        decimal.NewFromFloat(1.50),
		Quantity:     stock,
		CurrentStock: stock,
	}
}

func TestSaveItem_RecomputesStatus(t *testing.T) {
	repo := memory.NewItemRepository()
	ctx := context.Background()

	item := newTestItem("item-a", 5)
	item.StockStatus = domain.InStock // Caller-supplied status is ignored

	require.NoError(t, repo.SaveItem(ctx, item))

	saved, err := repo.FindItemByID(ctx, "item-a")
	require.NoError(t, err)
	assert.Equal(t, domain.LowStock, saved.StockStatus)
}

func TestSaveItem_Duplicate(t *testing.T) {
	repo := memory.NewItemRepository()
	ctx := context.Background()

	require.NoError(t, repo.SaveItem(ctx, newTestItem("item-a", 5)))
	err := repo.SaveItem(ctx, newTestItem("item-a", 5))
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestAdjustStock_StatusTransitions(t *testing.T) {
	repo := memory.NewItemRepository()
	ctx := context.Background()

	require.NoError(t, repo.SaveItem(ctx, newTestItem("item-a", 12)))

	// 12 -> 8: in-stock to low-stock
	updated, err := repo.AdjustStock(ctx, "item-a", 4, domain.StockSubtract)
	require.NoError(t, err)
	assert.Equal(t, 8, updated.CurrentStock)
	assert.Equal(t, domain.LowStock, updated.StockStatus)

	// 8 -> 0: low-stock to out-of-stock
	updated, err = repo.AdjustStock(ctx, "item-a", 8, domain.StockSubtract)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.CurrentStock)
	assert.Equal(t, domain.OutOfStock, updated.StockStatus)

	// 0 -> 20: back to in-stock
	updated, err = repo.AdjustStock(ctx, "item-a", 20, domain.StockAdd)
	require.NoError(t, err)
	assert.Equal(t, 20, updated.CurrentStock)
	assert.Equal(t, domain.InStock, updated.StockStatus)
}

func TestAdjustStock_SubtractSaturatesAtZero(t *testing.T) {
	repo := memory.NewItemRepository()
	ctx := context.Background()

	require.NoError(t, repo.SaveItem(ctx, newTestItem("item-a", 3)))

	updated, err := repo.AdjustStock(ctx, "item-a", 10, domain.StockSubtract)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.CurrentStock)
	assert.Equal(t, domain.OutOfStock, updated.StockStatus)
}

func TestAdjustStock_NotFound(t *testing.T) {
	repo := memory.NewItemRepository()

	_, err := repo.AdjustStock(context.Background(), "missing", 1, domain.StockAdd)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateItem_NotFound(t *testing.T) {
	repo := memory.NewItemRepository()

	err := repo.UpdateItem(context.Background(), newTestItem("missing", 5))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteItem_RemovesFromListing(t *testing.T) {
	repo := memory.NewItemRepository()
	ctx := context.Background()

	require.NoError(t, repo.SaveItem(ctx, newTestItem("item-a", 5)))
	require.NoError(t, repo.SaveItem(ctx, newTestItem("item-b", 5)))

	require.NoError(t, repo.DeleteItem(ctx, "item-a"))

	items, err := repo.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "item-b", items[0].ItemID)

	assert.ErrorIs(t, repo.DeleteItem(ctx, "item-a"), apperrors.ErrNotFound)
}

func TestListItems_PreservesInsertionOrder(t *testing.T) {
	repo := memory.NewItemRepository()
	ctx := context.Background()

	ids := []string{"item-c", "item-a", "item-b"}
	for _, id := range ids {
		require.NoError(t, repo.SaveItem(ctx, newTestItem(id, 5)))
	}

	items, err := repo.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	for i, id := range ids {
		assert.Equal(t, id, items[i].ItemID)
	}
}
