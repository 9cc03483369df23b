package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pharmastock/pharmastock_backend/internal/core/domain"
	portsrepo "github.com/pharmastock/pharmastock_backend/internal/core/ports/repositories"
	portssvc "github.com/pharmastock/pharmastock_backend/internal/core/ports/services"
)

// reportingService recomputes every report from ledger snapshots on demand.
// Windowed figures fold over dated transactions; the lifetime running totals
// are only surfaced where the dashboard explicitly asks for lifetime values.
type reportingService struct {
	BaseService
	txnRepo  portsrepo.TransactionReader
	itemRepo portsrepo.ItemReader
}

// NewReportingService creates a new reporting service.
func NewReportingService(txnRepo portsrepo.TransactionReader, itemRepo portsrepo.ItemReader) portssvc.ReportingService {
	return &reportingService{
		txnRepo:  txnRepo,
		itemRepo: itemRepo,
	}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// windowedTransactions returns the transactions dated inside [start, now].
func (s *reportingService) windowedTransactions(ctx context.Context, period domain.ReportPeriod, now time.Time) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	start := period.StartDate(now)
	windowed := make([]domain.Transaction, 0, len(txns))
	for _, txn := range txns {
		if txn.Date.Before(start) || txn.Date.After(now) {
			continue
		}
		windowed = append(windowed, txn)
	}
	return windowed, nil
}

func (s *reportingService) SalesReport(ctx context.Context, period domain.ReportPeriod, now time.Time) (*domain.SalesSummary, error) {
	txns, err := s.windowedTransactions(ctx, period, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to build sales report", "period", string(period))
		return nil, err
	}

	summary := domain.SalesSummary{TotalRevenue: decimal.Zero}
	for _, txn := range txns {
		if txn.Type != domain.Sale {
			continue
		}
		summary.TotalRevenue = summary.TotalRevenue.Add(txn.TotalAmount)
		summary.TotalQuantity += txn.Quantity
		summary.TransactionCount++
	}
	return &summary, nil
}

func (s *reportingService) PurchaseReport(ctx context.Context, period domain.ReportPeriod, now time.Time) (*domain.PurchaseSummary, error) {
	txns, err := s.windowedTransactions(ctx, period, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to build purchase report", "period", string(period))
		return nil, err
	}

	summary := domain.PurchaseSummary{TotalCost: decimal.Zero}
	for _, txn := range txns {
		if txn.Type != domain.Purchase {
			continue
		}
		summary.TotalCost = summary.TotalCost.Add(txn.TotalAmount)
		summary.TotalQuantity += txn.Quantity
		summary.TransactionCount++
	}
	return &summary, nil
}

// Profit folds sale and purchase totals over the window in a single pass.
// It deliberately ignores the ledger's lifetime running totals: deleting or
// clearing history must be reflected here immediately.
func (s *reportingService) Profit(ctx context.Context, period domain.ReportPeriod, now time.Time) (decimal.Decimal, error) {
	txns, err := s.windowedTransactions(ctx, period, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute profit", "period", string(period))
		return decimal.Zero, err
	}

	profit := decimal.Zero
	for _, txn := range txns {
		switch txn.Type {
		case domain.Sale:
			profit = profit.Add(txn.TotalAmount)
		case domain.Purchase:
			profit = profit.Sub(txn.TotalAmount)
		}
	}
	return profit, nil
}

func (s *reportingService) StockReport(ctx context.Context, now time.Time) ([]domain.StockReportRow, error) {
	items, err := s.itemRepo.ListItems(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to build stock report")
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	rows := make([]domain.StockReportRow, len(items))
	for i, item := range items {
		rows[i] = domain.StockReportRow{
			ItemID:       item.ItemID,
			Name:         item.Name,
			Category:     item.Category,
			CurrentStock: item.CurrentStock,
			StockStatus:  item.StockStatus,
			Price:        item.Price,
			TotalValue:   item.Price.Mul(decimal.NewFromInt(int64(item.CurrentStock))),
			ExpiryDate:   item.ExpiryDate,
			IsExpired:    item.IsExpired(now),
			IsNearExpiry: item.IsNearExpiry(now),
		}
	}
	return rows, nil
}

func (s *reportingService) TopSellingItems(ctx context.Context, period domain.ReportPeriod, now time.Time, limit int) ([]domain.TopSellingItem, error) {
	txns, err := s.windowedTransactions(ctx, period, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to build top sellers report", "period", string(period))
		return nil, err
	}

	type acc struct {
		name     string
		quantity int
		revenue  decimal.Decimal
	}
	byItem := make(map[string]*acc)
	order := make([]string, 0)
	for _, txn := range txns {
		if txn.Type != domain.Sale {
			continue
		}
		entry, ok := byItem[txn.ItemID]
		if !ok {
			entry = &acc{name: txn.ItemName, revenue: decimal.Zero}
			byItem[txn.ItemID] = entry
			order = append(order, txn.ItemID)
		}
		entry.quantity += txn.Quantity
		entry.revenue = entry.revenue.Add(txn.TotalAmount)
	}

	ranked := make([]domain.TopSellingItem, 0, len(order))
	for _, itemID := range order {
		entry := byItem[itemID]
		ranked = append(ranked, domain.TopSellingItem{
			ItemID:   itemID,
			Name:     entry.name,
			Quantity: entry.quantity,
			Revenue:  entry.revenue,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue.GreaterThan(ranked[j].Revenue)
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

func (s *reportingService) DailyBreakdown(ctx context.Context, period domain.ReportPeriod, now time.Time) ([]domain.DailyBreakdownRow, error) {
	txns, err := s.windowedTransactions(ctx, period, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to build daily breakdown", "period", string(period))
		return nil, err
	}

	byDay := make(map[string]*domain.DailyBreakdownRow)
	days := make([]string, 0)
	for _, txn := range txns {
		day := txn.Date.Format("2006-01-02")
		row, ok := byDay[day]
		if !ok {
			row = &domain.DailyBreakdownRow{
				Date:      day,
				Sales:     decimal.Zero,
				Purchases: decimal.Zero,
			}
			byDay[day] = row
			days = append(days, day)
		}
		switch txn.Type {
		case domain.Sale:
			row.Sales = row.Sales.Add(txn.TotalAmount)
		case domain.Purchase:
			row.Purchases = row.Purchases.Add(txn.TotalAmount)
		}
	}

	sort.Strings(days)
	rows := make([]domain.DailyBreakdownRow, len(days))
	for i, day := range days {
		rows[i] = *byDay[day]
	}
	return rows, nil
}

func (s *reportingService) DashboardStats(ctx context.Context, now time.Time) (*domain.DashboardStats, error) {
	items, err := s.itemRepo.ListItems(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to build dashboard stats")
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	totals, err := s.txnRepo.Totals(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to read ledger totals for dashboard")
		return nil, fmt.Errorf("failed to read ledger totals: %w", err)
	}

	stats := domain.DashboardStats{
		TotalItems:     len(items),
		InventoryValue: decimal.Zero,
		TotalRevenue:   totals.TotalRevenue,
		TotalCost:      totals.TotalCost,
	}
	for _, item := range items {
		switch item.StockStatus {
		case domain.InStock:
			stats.InStock++
		case domain.LowStock:
			stats.LowStock++
		case domain.OutOfStock:
			stats.OutOfStock++
		}
		if item.IsExpired(now) {
			stats.ExpiredItems++
		}
		if item.IsNearExpiry(now) {
			stats.NearExpiry++
		}
		stats.InventoryValue = stats.InventoryValue.Add(item.Price.Mul(decimal.NewFromInt(int64(item.CurrentStock))))
	}
	return &stats, nil
}
