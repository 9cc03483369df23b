package services

import (
	"context"
	"time"

	"github.com/pharmastock/pharmastock_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingService defines the derived read views over both ledgers.
// Every report is recomputed on demand from ledger snapshots; nothing is cached.
type ReportingService interface {
	// SalesReport aggregates sale transactions whose date falls in the window.
	SalesReport(ctx context.Context, period domain.ReportPeriod, now time.Time) (*domain.SalesSummary, error)

	// PurchaseReport aggregates purchase transactions in the window.
	PurchaseReport(ctx context.Context, period domain.ReportPeriod, now time.Time) (*domain.PurchaseSummary, error)

	// Profit returns windowed profit: sale totals minus purchase totals over
	// transactions dated inside the window, never the lifetime scalars.
	Profit(ctx context.Context, period domain.ReportPeriod, now time.Time) (decimal.Decimal, error)

	// StockReport lists every item with its valuation and expiry flags.
	StockReport(ctx context.Context, now time.Time) ([]domain.StockReportRow, error)

	// TopSellingItems ranks items by sale revenue in the window, capped at limit.
	TopSellingItems(ctx context.Context, period domain.ReportPeriod, now time.Time, limit int) ([]domain.TopSellingItem, error)

	// DailyBreakdown groups windowed transactions by calendar day.
	DailyBreakdown(ctx context.Context, period domain.ReportPeriod, now time.Time) ([]domain.DailyBreakdownRow, error)

	// DashboardStats summarizes both ledgers for the landing view.
	DashboardStats(ctx context.Context, now time.Time) (*domain.DashboardStats, error)
}
