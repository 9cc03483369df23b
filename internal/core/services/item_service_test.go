package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pharmastock/pharmastock_backend/internal/apperrors"
	"github.com/pharmastock/pharmastock_backend/internal/core/domain"
	portssvc "github.com/pharmastock/pharmastock_backend/internal/core/ports/services"
	"github.com/pharmastock/pharmastock_backend/internal/core/services"
	"github.com/pharmastock/pharmastock_backend/internal/dto"
)

type ItemServiceTestSuite struct {
	suite.Suite
	mockRepo *MockItemRepository
	service  portssvc.ItemSvcFacade
}

func (suite *ItemServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockItemRepository)
	suite.service = services.NewItemService(suite.mockRepo)
}

func (suite *ItemServiceTestSuite) TestCreateItem_Success() {
	ctx := context.Background()
	req := dto.CreateItemRequest{
		Name:         "Paracetamol 500mg",
		Category:     domain.CategoryTablets,
		ExpiryDate:   time.Now().AddDate(2, 0, 0),
		Price:        decimal.NewFromFloat(0.25),
		Quantity:     1000,
		CurrentStock: 8,
	}

	suite.mockRepo.On("SaveItem", ctx, mock.AnythingOfType("domain.Item")).Return(nil).Once()

	item, err := suite.service.CreateItem(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(item)
	suite.NotEmpty(item.ItemID)
	suite.Equal(domain.LowStock, item.StockStatus, "status derived from current stock")
	suite.Equal("user-1", item.CreatedBy)
	suite.Equal("user-1", item.LastUpdatedBy)
	suite.WithinDuration(time.Now(), item.CreatedAt, time.Second)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ItemServiceTestSuite) TestCreateItem_NegativePrice() {
	ctx := context.Background()
	req := dto.CreateItemRequest{
		Name:       "Bad Item",
		Category:   domain.CategoryOther,
		ExpiryDate: time.Now().AddDate(1, 0, 0),
		Price:      decimal.NewFromFloat(-5),
	}

	item, err := suite.service.CreateItem(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.Nil(item)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveItem", mock.Anything, mock.Anything)
}

func (suite *ItemServiceTestSuite) listFixture() []domain.Item {
	return []domain.Item{
		{ItemID: "item-1", Name: "Cough Syrup", Category: domain.CategorySyrups, CurrentStock: 45, StockStatus: domain.InStock, Price: decimal.NewFromFloat(8.99), ExpiryDate: time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC), Manufacturer: "PharmaDist"},
		{ItemID: "item-2", Name: "Aspirin 100mg", Category: domain.CategoryTablets, CurrentStock: 0, StockStatus: domain.OutOfStock, Price: decimal.NewFromFloat(0.18), ExpiryDate: time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC), Manufacturer: "CardioMed"},
		{ItemID: "item-3", Name: "Vitamin D3 Tablets", Category: domain.CategoryTablets, CurrentStock: 8, StockStatus: domain.LowStock, Price: decimal.NewFromFloat(12.99), ExpiryDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), Manufacturer: "VitaHealth"},
	}
}

func (suite *ItemServiceTestSuite) TestListItems_CategoryFilter() {
	ctx := context.Background()
	suite.mockRepo.On("ListItems", ctx).Return(suite.listFixture(), nil)

	items, err := suite.service.ListItems(ctx, dto.ListItemsParams{Category: "tablets"})

	suite.Require().NoError(err)
	suite.Require().Len(items, 2)
	for _, item := range items {
		suite.Equal(domain.CategoryTablets, item.Category)
	}
}

func (suite *ItemServiceTestSuite) TestListItems_Search() {
	ctx := context.Background()
	suite.mockRepo.On("ListItems", ctx).Return(suite.listFixture(), nil)

	items, err := suite.service.ListItems(ctx, dto.ListItemsParams{Search: "vita"})

	suite.Require().NoError(err)
	suite.Require().Len(items, 1)
	suite.Equal("item-3", items[0].ItemID)
}

func (suite *ItemServiceTestSuite) TestListItems_SortByPriceDesc() {
	ctx := context.Background()
	suite.mockRepo.On("ListItems", ctx).Return(suite.listFixture(), nil)

	items, err := suite.service.ListItems(ctx, dto.ListItemsParams{SortBy: "price", SortOrder: "desc"})

	suite.Require().NoError(err)
	suite.Require().Len(items, 3)
	suite.Equal("item-3", items[0].ItemID)
	suite.Equal("item-1", items[1].ItemID)
	suite.Equal("item-2", items[2].ItemID)
}

func (suite *ItemServiceTestSuite) TestListItems_SortByStockStatus() {
	ctx := context.Background()
	suite.mockRepo.On("ListItems", ctx).Return(suite.listFixture(), nil)

	// Most urgent first: out-of-stock, then low-stock, then in-stock.
	items, err := suite.service.ListItems(ctx, dto.ListItemsParams{SortBy: "stockStatus"})

	suite.Require().NoError(err)
	suite.Require().Len(items, 3)
	suite.Equal(domain.OutOfStock, items[0].StockStatus)
	suite.Equal(domain.LowStock, items[1].StockStatus)
	suite.Equal(domain.InStock, items[2].StockStatus)
}

func (suite *ItemServiceTestSuite) TestUpdateItem_RecomputesStatus() {
	ctx := context.Background()
	existing := &domain.Item{
		ItemID:       "item-1",
		Name:         "Cough Syrup",
		Category:     domain.CategorySyrups,
		CurrentStock: 45,
		StockStatus:  domain.InStock,
		Price:        decimal.NewFromFloat(8.99),
	}
	req := dto.UpdateItemRequest{
		Name:         "Cough Syrup",
		Category:     domain.CategorySyrups,
		ExpiryDate:   time.Now().AddDate(1, 0, 0),
		Price:        decimal.NewFromFloat(9.49),
		CurrentStock: 4,
	}

	suite.mockRepo.On("FindItemByID", ctx, "item-1").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateItem", ctx, mock.AnythingOfType("domain.Item")).Return(nil).Once()

	updated, err := suite.service.UpdateItem(ctx, "item-1", req, "user-2")

	suite.Require().NoError(err)
	suite.Equal(domain.LowStock, updated.StockStatus)
	suite.Equal("user-2", updated.LastUpdatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ItemServiceTestSuite) TestUpdateItem_NotFound() {
	ctx := context.Background()
	req := dto.UpdateItemRequest{
		Name:       "Ghost",
		Category:   domain.CategoryOther,
		ExpiryDate: time.Now().AddDate(1, 0, 0),
	}

	suite.mockRepo.On("FindItemByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateItem(ctx, "missing", req, "user-1")

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateItem", mock.Anything, mock.Anything)
}

func (suite *ItemServiceTestSuite) TestAdjustStock_Delegates() {
	ctx := context.Background()
	adjusted := &domain.Item{ItemID: "item-1", CurrentStock: 0, StockStatus: domain.OutOfStock}

	suite.mockRepo.On("AdjustStock", ctx, "item-1", 50, domain.StockSubtract).Return(adjusted, nil).Once()

	item, err := suite.service.AdjustStock(ctx, "item-1", dto.AdjustStockRequest{
		Quantity:  50,
		Direction: domain.StockSubtract,
	}, "user-1")

	suite.Require().NoError(err)
	suite.Equal(0, item.CurrentStock)
	suite.Equal(domain.OutOfStock, item.StockStatus)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestItemServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ItemServiceTestSuite))
}
