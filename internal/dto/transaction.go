package dto

import (
	"time"

	"github.com/pharmastock/pharmastock_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordTransactionRequest defines the data needed to record a sale or purchase.
// TotalAmount is computed server-side as quantity * pricePerUnit.
type RecordTransactionRequest struct {
	ItemID        string               `json:"itemID" binding:"required"`
	Type          domain.TransactionType `json:"type" binding:"required,oneof=sale purchase"`
	Quantity      int                  `json:"quantity" binding:"required,gt=0"`
	PricePerUnit  decimal.Decimal      `json:"pricePerUnit" binding:"required"`
	Date          *time.Time           `json:"date"` // Defaults to now when omitted
	CustomerName  string               `json:"customerName"`
	SupplierName  string               `json:"supplierName"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod" binding:"omitempty,oneof=cash card bank_transfer check"`
	Notes         string               `json:"notes"`
	BatchNumber   string               `json:"batchNumber"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Type   string `form:"type" binding:"omitempty,oneof=sale purchase"`
	Period string `form:"period,default=all" binding:"omitempty,oneof=today week month all"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string               `json:"transactionID"`
	ItemID        string               `json:"itemID"`
	ItemName      string               `json:"itemName"`
	Type          domain.TransactionType `json:"type"`
	Quantity      int                  `json:"quantity"`
	PricePerUnit  decimal.Decimal      `json:"pricePerUnit"`
	TotalAmount   decimal.Decimal      `json:"totalAmount"`
	Date          time.Time            `json:"date"`
	CustomerName  string               `json:"customerName,omitempty"`
	SupplierName  string               `json:"supplierName,omitempty"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod,omitempty"`
	Notes         string               `json:"notes,omitempty"`
	BatchNumber   string               `json:"batchNumber,omitempty"`
}

// ListTransactionsResponse wraps the transaction history.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// LedgerTotalsResponse carries the lifetime running totals.
type LedgerTotalsResponse struct {
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalCost    decimal.Decimal `json:"totalCost"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		ItemID:        txn.ItemID,
		ItemName:      txn.ItemName,
		Type:          txn.Type,
		Quantity:      txn.Quantity,
		PricePerUnit:  txn.PricePerUnit,
		TotalAmount:   txn.TotalAmount,
		Date:          txn.Date,
		CustomerName:  txn.CustomerName,
		SupplierName:  txn.SupplierName,
		PaymentMethod: txn.PaymentMethod,
		Notes:         txn.Notes,
		BatchNumber:   txn.BatchNumber,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to DTOs.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}

// ToLedgerTotalsResponse converts domain totals to the response DTO.
func ToLedgerTotalsResponse(totals domain.LedgerTotals) LedgerTotalsResponse {
	return LedgerTotalsResponse{
		TotalRevenue: totals.TotalRevenue,
		TotalCost:    totals.TotalCost,
	}
}
