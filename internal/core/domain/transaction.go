package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is a sale or a purchase.
type TransactionType string

const (
	Sale     TransactionType = "sale"
	Purchase TransactionType = "purchase"
)

// PaymentMethod is the closed set of accepted payment methods.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentCard         PaymentMethod = "card"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentCheck        PaymentMethod = "check"
)

// Transaction represents a single immutable sale or purchase event.
// ItemName is a snapshot taken at recording time and is not kept in sync
// with later item renames. TotalAmount equals Quantity * PricePerUnit at
// creation and is never re-derived afterwards.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	ItemID        string          `json:"itemID"`
	ItemName      string          `json:"itemName"`
	Type          TransactionType `json:"type"`
	Quantity      int             `json:"quantity"` // Positive unit count
	PricePerUnit  decimal.Decimal `json:"pricePerUnit"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Date          time.Time       `json:"date"`
	CustomerName  string          `json:"customerName"`  // Sale only, nullable
	SupplierName  string          `json:"supplierName"`  // Purchase only, nullable
	PaymentMethod PaymentMethod   `json:"paymentMethod"` // Nullable
	Notes         string          `json:"notes"`         // Nullable
	BatchNumber   string          `json:"batchNumber"`   // Nullable
	AuditFields
}

// LedgerTotals carries the lifetime running aggregates of the transaction ledger.
type LedgerTotals struct {
	TotalRevenue decimal.Decimal `json:"totalRevenue"` // Sum of sale totalAmount
	TotalCost    decimal.Decimal `json:"totalCost"`    // Sum of purchase totalAmount
}
