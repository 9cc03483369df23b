package dto

import (
	"time"

	"github.com/pharmastock/pharmastock_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportParams defines the shared query parameters for report endpoints.
type ReportParams struct {
	Period string `form:"period,default=month" binding:"omitempty,oneof=week month year all"`
}

// SalesReportResponse is the windowed sales summary response.
type SalesReportResponse struct {
	Period           string          `json:"period"`
	FromDate         string          `json:"fromDate"`
	ToDate           string          `json:"toDate"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TotalQuantity    int             `json:"totalQuantity"`
	TransactionCount int             `json:"transactionCount"`
}

// PurchaseReportResponse is the windowed purchase summary response.
type PurchaseReportResponse struct {
	Period           string          `json:"period"`
	FromDate         string          `json:"fromDate"`
	ToDate           string          `json:"toDate"`
	TotalCost        decimal.Decimal `json:"totalCost"`
	TotalQuantity    int             `json:"totalQuantity"`
	TransactionCount int             `json:"transactionCount"`
}

// StockReportRowResponse is one row of the current-stock report response.
type StockReportRowResponse struct {
	ItemID       string          `json:"itemID"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	CurrentStock int             `json:"currentStock"`
	StockStatus  string          `json:"stockStatus"`
	Price        decimal.Decimal `json:"price"`
	TotalValue   decimal.Decimal `json:"totalValue"`
	ExpiryDate   string          `json:"expiryDate"`
	IsExpired    bool            `json:"isExpired"`
	IsNearExpiry bool            `json:"isNearExpiry"`
}

// StockReportResponse is the full current-stock report with its valuation.
type StockReportResponse struct {
	Rows       []StockReportRowResponse `json:"rows"`
	TotalValue decimal.Decimal          `json:"totalValue"`
}

// TopSellingItemResponse is one ranked row of the top-sellers report.
type TopSellingItemResponse struct {
	Rank     int             `json:"rank"`
	ItemID   string          `json:"itemID"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// DailyBreakdownResponse is the per-day trend report.
type DailyBreakdownResponse struct {
	Period string                     `json:"period"`
	Days   []domain.DailyBreakdownRow `json:"days"`
}

// ProfitResponse is the windowed profit figure.
type ProfitResponse struct {
	Period   string          `json:"period"`
	FromDate string          `json:"fromDate"`
	ToDate   string          `json:"toDate"`
	Profit   decimal.Decimal `json:"profit"`
}

// ToSalesReportResponse converts a domain sales summary to the response DTO.
func ToSalesReportResponse(s *domain.SalesSummary, period domain.ReportPeriod, now time.Time) SalesReportResponse {
	return SalesReportResponse{
		Period:           string(period),
		FromDate:         period.StartDate(now).Format("2006-01-02"),
		ToDate:           now.Format("2006-01-02"),
		TotalRevenue:     s.TotalRevenue,
		TotalQuantity:    s.TotalQuantity,
		TransactionCount: s.TransactionCount,
	}
}

// ToPurchaseReportResponse converts a domain purchase summary to the response DTO.
func ToPurchaseReportResponse(p *domain.PurchaseSummary, period domain.ReportPeriod, now time.Time) PurchaseReportResponse {
	return PurchaseReportResponse{
		Period:           string(period),
		FromDate:         period.StartDate(now).Format("2006-01-02"),
		ToDate:           now.Format("2006-01-02"),
		TotalCost:        p.TotalCost,
		TotalQuantity:    p.TotalQuantity,
		TransactionCount: p.TransactionCount,
	}
}

// ToStockReportResponse converts domain stock rows to the response DTO,
// summing the per-item valuations.
func ToStockReportResponse(rows []domain.StockReportRow) StockReportResponse {
	response := StockReportResponse{
		Rows:       make([]StockReportRowResponse, len(rows)),
		TotalValue: decimal.Zero,
	}
	for i, row := range rows {
		response.Rows[i] = StockReportRowResponse{
			ItemID:       row.ItemID,
			Name:         row.Name,
			Category:     string(row.Category),
			CurrentStock: row.CurrentStock,
			StockStatus:  string(row.StockStatus),
			Price:        row.Price,
			TotalValue:   row.TotalValue,
			ExpiryDate:   row.ExpiryDate.Format("2006-01-02"),
			IsExpired:    row.IsExpired,
			IsNearExpiry: row.IsNearExpiry,
		}
		response.TotalValue = response.TotalValue.Add(row.TotalValue)
	}
	return response
}

// ToTopSellingResponse converts ranked domain rows to response DTOs.
func ToTopSellingResponse(items []domain.TopSellingItem) []TopSellingItemResponse {
	responses := make([]TopSellingItemResponse, len(items))
	for i, item := range items {
		responses[i] = TopSellingItemResponse{
			Rank:     i + 1,
			ItemID:   item.ItemID,
			Name:     item.Name,
			Quantity: item.Quantity,
			Revenue:  item.Revenue,
		}
	}
	return responses
}
