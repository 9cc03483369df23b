package services

import (
	"context"

	"github.com/pharmastock/pharmastock_backend/internal/core/domain"
	"github.com/pharmastock/pharmastock_backend/internal/dto"
)

// TransactionSvcFacade defines the transaction-ledger operations exposed to handlers.
type TransactionSvcFacade interface {
	// RecordTransaction runs the two-step sale/purchase workflow: stock
	// sufficiency check (sales only), append to the transaction ledger, then
	// adjust the inventory ledger. Returns the recorded transaction.
	RecordTransaction(ctx context.Context, req dto.RecordTransactionRequest, creatorUserID string) (*domain.Transaction, error)

	// ListTransactions returns the transaction history, optionally filtered
	// by type and period.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error)

	// DeleteTransaction removes a transaction and reverses its effect on the
	// running totals. Stock is not readjusted.
	DeleteTransaction(ctx context.Context, transactionID string) error

	// ClearTransactions wipes the history and resets both running totals.
	ClearTransactions(ctx context.Context) error

	// Totals returns the lifetime running revenue and cost.
	Totals(ctx context.Context) (domain.LedgerTotals, error)
}
