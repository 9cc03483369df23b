package repositories

import (
	"context"

	"github.com/pharmastock/pharmastock_backend/internal/core/domain"
)

// TransactionReader defines read operations over the transaction ledger.
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns a snapshot of the full history in recording order.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// Totals returns the lifetime running revenue and cost aggregates.
	Totals(ctx context.Context) (domain.LedgerTotals, error)
}

// TransactionWriter defines write operations over the transaction ledger.
type TransactionWriter interface {
	// SaveTransaction appends the transaction and folds its TotalAmount into
	// the matching running total. The amount is recorded exactly as given.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes the transaction by ID and reverses its effect
	// on the running totals.
	DeleteTransaction(ctx context.Context, transactionID string) error

	// ClearTransactions empties the history and resets both totals to zero.
	ClearTransactions(ctx context.Context) error
}

// TransactionRepositoryFacade combines all transaction-ledger repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
