package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportPeriod selects the reporting window relative to now.
type ReportPeriod string

const (
	PeriodWeek  ReportPeriod = "week"
	PeriodMonth ReportPeriod = "month"
	PeriodYear  ReportPeriod = "year"
	PeriodAll   ReportPeriod = "all"
)

// StartDate returns the beginning of the period's window relative to now.
// PeriodAll returns the zero time so every transaction falls inside.
func (p ReportPeriod) StartDate(now time.Time) time.Time {
	switch p {
	case PeriodWeek:
		return now.AddDate(0, 0, -7)
	case PeriodMonth:
		return now.AddDate(0, -1, 0)
	case PeriodYear:
		return now.AddDate(-1, 0, 0)
	default:
		return time.Time{}
	}
}

// StockReportRow is one line of the current-stock report.
type StockReportRow struct {
	ItemID       string          `json:"itemID"`
	Name         string          `json:"name"`
	Category     ItemCategory    `json:"category"`
	CurrentStock int             `json:"currentStock"`
	StockStatus  StockStatus     `json:"stockStatus"`
	Price        decimal.Decimal `json:"price"`
	TotalValue   decimal.Decimal `json:"totalValue"` // currentStock * price
	ExpiryDate   time.Time       `json:"expiryDate"`
	IsExpired    bool            `json:"isExpired"`
	IsNearExpiry bool            `json:"isNearExpiry"`
}

// SalesSummary aggregates sale transactions over a reporting window.
type SalesSummary struct {
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TotalQuantity    int             `json:"totalQuantity"`
	TransactionCount int             `json:"transactionCount"`
}

// PurchaseSummary aggregates purchase transactions over a reporting window.
type PurchaseSummary struct {
	TotalCost        decimal.Decimal `json:"totalCost"`
	TotalQuantity    int             `json:"totalQuantity"`
	TransactionCount int             `json:"transactionCount"`
}

// TopSellingItem is one row of the top-sellers report, ranked by revenue.
type TopSellingItem struct {
	ItemID   string          `json:"itemID"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// DailyBreakdownRow holds one day's sale and purchase totals for trend views.
type DailyBreakdownRow struct {
	Date      string          `json:"date"` // YYYY-MM-DD
	Sales     decimal.Decimal `json:"sales"`
	Purchases decimal.Decimal `json:"purchases"`
}

// DashboardStats is the snapshot the dashboard landing view renders.
type DashboardStats struct {
	TotalItems     int             `json:"totalItems"`
	InStock        int             `json:"inStock"`
	LowStock       int             `json:"lowStock"`
	OutOfStock     int             `json:"outOfStock"`
	ExpiredItems   int             `json:"expiredItems"`
	NearExpiry     int             `json:"nearExpiry"`
	InventoryValue decimal.Decimal `json:"inventoryValue"` // Sum of currentStock * price
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`   // Lifetime
	TotalCost      decimal.Decimal `json:"totalCost"`      // Lifetime
}
