package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/pharmastock/pharmastock_backend/internal/core/domain"
	portssvc "github.com/pharmastock/pharmastock_backend/internal/core/ports/services"
	"github.com/pharmastock/pharmastock_backend/internal/core/services"
	"github.com/pharmastock/pharmastock_backend/internal/repositories/memory"
)

// ReportingServiceTestSuite exercises the reporting folds against the real
// in-memory ledgers so windowed figures are checked against actual ledger
// behavior rather than canned mock returns.
type ReportingServiceTestSuite struct {
	suite.Suite
	itemRepo *memory.ItemRepository
	txnRepo  *memory.TransactionRepository
	service  portssvc.ReportingService
	now      time.Time
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.itemRepo = memory.NewItemRepository()
	suite.txnRepo = memory.NewTransactionRepository()
	suite.service = services.NewReportingService(suite.txnRepo, suite.itemRepo)
	suite.now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
}

func (suite *ReportingServiceTestSuite) seedItem(id string, stock int, price float64, expiry time.Time) {
	err := suite.itemRepo.SaveItem(context.Background(), domain.Item{
		ItemID:       id,
		Name:         "Item " + id,
		Category:     domain.CategoryTablets,
		CurrentStock: stock,
		Price:        decimal.NewFromFloat(price),
		ExpiryDate:   expiry,
	})
	require.NoError(suite.T(), err)
}

func (suite *ReportingServiceTestSuite) seedTxn(id string, txnType domain.TransactionType, itemID string, qty int, total float64, daysAgo int) {
	err := suite.txnRepo.SaveTransaction(context.Background(), domain.Transaction{
		TransactionID: id,
		ItemID:        itemID,
		ItemName:      "Item " + itemID,
		Type:          txnType,
		Quantity:      qty,
		TotalAmount:   decimal.NewFromFloat(total),
		Date:          suite.now.AddDate(0, 0, -daysAgo),
	})
	require.NoError(suite.T(), err)
}

func (suite *ReportingServiceTestSuite) TestSalesReport_WindowExcludesOldSales() {
	ctx := context.Background()
	suite.seedTxn("sale-1", domain.Sale, "item-1", 50, 12.50, 2)
	suite.seedTxn("sale-2", domain.Sale, "item-2", 3, 26.97, 5)
	suite.seedTxn("sale-old", domain.Sale, "item-1", 100, 25.00, 60) // Outside the month window
	suite.seedTxn("purchase-1", domain.Purchase, "item-1", 1000, 120.00, 2)

	summary, err := suite.service.SalesReport(ctx, domain.PeriodMonth, suite.now)

	suite.Require().NoError(err)
	suite.Equal(2, summary.TransactionCount)
	suite.Equal(53, summary.TotalQuantity)
	suite.True(summary.TotalRevenue.Equal(decimal.NewFromFloat(39.47)), "revenue was %s", summary.TotalRevenue)
}

func (suite *ReportingServiceTestSuite) TestProfit_FoldsOverWindowNotLifetimeTotals() {
	ctx := context.Background()
	suite.seedTxn("sale-1", domain.Sale, "item-1", 10, 100.00, 3)
	suite.seedTxn("purchase-1", domain.Purchase, "item-1", 100, 60.00, 4)
	suite.seedTxn("sale-old", domain.Sale, "item-1", 10, 500.00, 90)

	profit, err := suite.service.Profit(ctx, domain.PeriodMonth, suite.now)
	suite.Require().NoError(err)
	suite.True(profit.Equal(decimal.NewFromFloat(40.00)), "profit was %s", profit)

	// Deleting a windowed transaction must change the figure immediately,
	// which cannot happen if profit were read off the running totals.
	require.NoError(suite.T(), suite.txnRepo.DeleteTransaction(ctx, "purchase-1"))

	profit, err = suite.service.Profit(ctx, domain.PeriodMonth, suite.now)
	suite.Require().NoError(err)
	suite.True(profit.Equal(decimal.NewFromFloat(100.00)), "profit was %s", profit)

	// The all window still sees the old sale.
	profit, err = suite.service.Profit(ctx, domain.PeriodAll, suite.now)
	suite.Require().NoError(err)
	suite.True(profit.Equal(decimal.NewFromFloat(600.00)), "profit was %s", profit)
}

func (suite *ReportingServiceTestSuite) TestTopSellingItems_RankedByRevenue() {
	ctx := context.Background()
	suite.seedTxn("sale-1", domain.Sale, "item-1", 50, 12.50, 1)
	suite.seedTxn("sale-2", domain.Sale, "item-2", 3, 26.97, 2)
	suite.seedTxn("sale-3", domain.Sale, "item-1", 20, 5.00, 3)
	suite.seedTxn("purchase-1", domain.Purchase, "item-2", 100, 420.00, 2)

	ranked, err := suite.service.TopSellingItems(ctx, domain.PeriodMonth, suite.now, 10)

	suite.Require().NoError(err)
	suite.Require().Len(ranked, 2)
	suite.Equal("item-2", ranked[0].ItemID, "highest revenue first")
	suite.Equal("item-1", ranked[1].ItemID)
	suite.Equal(70, ranked[1].Quantity, "quantities accumulate across sales")
	suite.True(ranked[1].Revenue.Equal(decimal.NewFromFloat(17.50)))
}

func (suite *ReportingServiceTestSuite) TestTopSellingItems_LimitApplied() {
	ctx := context.Background()
	for i := 0; i < 12; i++ {
		id := string(rune('a' + i))
		suite.seedTxn("sale-"+id, domain.Sale, "item-"+id, 1, float64(i+1), 1)
	}

	ranked, err := suite.service.TopSellingItems(ctx, domain.PeriodMonth, suite.now, 10)

	suite.Require().NoError(err)
	suite.Len(ranked, 10)
}

func (suite *ReportingServiceTestSuite) TestDailyBreakdown_GroupsByCalendarDay() {
	ctx := context.Background()
	suite.seedTxn("sale-1", domain.Sale, "item-1", 1, 10.00, 2)
	suite.seedTxn("sale-2", domain.Sale, "item-1", 1, 15.00, 2)
	suite.seedTxn("purchase-1", domain.Purchase, "item-1", 10, 30.00, 2)
	suite.seedTxn("sale-3", domain.Sale, "item-1", 1, 5.00, 1)

	rows, err := suite.service.DailyBreakdown(ctx, domain.PeriodWeek, suite.now)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	suite.Equal("2025-06-13", rows[0].Date)
	suite.True(rows[0].Sales.Equal(decimal.NewFromFloat(25.00)))
	suite.True(rows[0].Purchases.Equal(decimal.NewFromFloat(30.00)))
	suite.Equal("2025-06-14", rows[1].Date)
	suite.True(rows[1].Sales.Equal(decimal.NewFromFloat(5.00)))
	suite.True(rows[1].Purchases.IsZero())
}

func (suite *ReportingServiceTestSuite) TestStockReport_ValuationAndExpiryFlags() {
	ctx := context.Background()
	suite.seedItem("item-1", 800, 0.25, suite.now.AddDate(1, 0, 0))
	suite.seedItem("item-2", 15, 6.75, suite.now.AddDate(0, 0, 10)) // Near expiry
	suite.seedItem("item-3", 0, 0.18, suite.now.AddDate(0, 0, -5))  // Expired

	rows, err := suite.service.StockReport(ctx, suite.now)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 3)

	suite.True(rows[0].TotalValue.Equal(decimal.NewFromFloat(200.00)), "value was %s", rows[0].TotalValue)
	suite.False(rows[0].IsExpired)
	suite.False(rows[0].IsNearExpiry)

	suite.True(rows[1].IsNearExpiry)
	suite.False(rows[1].IsExpired)

	suite.True(rows[2].IsExpired)
	suite.Equal(domain.OutOfStock, rows[2].StockStatus)
}

func (suite *ReportingServiceTestSuite) TestDashboardStats() {
	ctx := context.Background()
	suite.seedItem("item-1", 800, 0.25, suite.now.AddDate(1, 0, 0))
	suite.seedItem("item-2", 8, 12.99, suite.now.AddDate(0, 0, 10))
	suite.seedItem("item-3", 0, 0.18, suite.now.AddDate(0, 0, -5))
	suite.seedTxn("sale-1", domain.Sale, "item-1", 50, 12.50, 2)
	suite.seedTxn("purchase-1", domain.Purchase, "item-1", 1000, 120.00, 15)

	stats, err := suite.service.DashboardStats(ctx, suite.now)

	suite.Require().NoError(err)
	suite.Equal(3, stats.TotalItems)
	suite.Equal(1, stats.InStock)
	suite.Equal(1, stats.LowStock)
	suite.Equal(1, stats.OutOfStock)
	suite.Equal(1, stats.ExpiredItems)
	suite.Equal(1, stats.NearExpiry)
	suite.True(stats.TotalRevenue.Equal(decimal.NewFromFloat(12.50)))
	suite.True(stats.TotalCost.Equal(decimal.NewFromFloat(120.00)))
	suite.True(stats.InventoryValue.Equal(decimal.NewFromFloat(303.92)), "value was %s", stats.InventoryValue)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
