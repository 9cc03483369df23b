package memory

import (
	"context"
	"sync"

	"github.com/pharmastock/pharmastock_backend/internal/apperrors"
	"github.com/pharmastock/pharmastock_backend/internal/core/domain"
	portsrepo "github.com/pharmastock/pharmastock_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// TransactionRepository is the in-memory transaction ledger: an append-only
// history of sale/purchase events plus the lifetime running revenue and cost
// scalars. Recording and deleting keep the scalars in lockstep with the
// history; windowed figures are never derived from them.
type TransactionRepository struct {
	mu           sync.RWMutex
	transactions []domain.Transaction
	totalRevenue decimal.Decimal
	totalCost    decimal.Decimal
}

// NewTransactionRepository creates an empty transaction ledger.
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{
		totalRevenue: decimal.Zero,
		totalCost:    decimal.Zero,
	}
}

// Ensure TransactionRepository implements the repository facade.
var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

// SaveTransaction appends the transaction and folds its TotalAmount into the
// matching running total. The amount is recorded exactly as given; the ledger
// does not re-derive it from quantity and unit price.
func (r *TransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.transactions {
		if existing.TransactionID == txn.TransactionID {
			return apperrors.ErrDuplicate
		}
	}

	r.transactions = append(r.transactions, txn)
	if txn.Type == domain.Sale {
		r.totalRevenue = r.totalRevenue.Add(txn.TotalAmount)
	} else {
		r.totalCost = r.totalCost.Add(txn.TotalAmount)
	}
	return nil
}

// DeleteTransaction removes the transaction by ID and subtracts its
// TotalAmount from the matching running total, restoring the pre-recording
// value.
func (r *TransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, txn := range r.transactions {
		if txn.TransactionID == transactionID {
			if txn.Type == domain.Sale {
				r.totalRevenue = r.totalRevenue.Sub(txn.TotalAmount)
			} else {
				r.totalCost = r.totalCost.Sub(txn.TotalAmount)
			}
			r.transactions = append(r.transactions[:i], r.transactions[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// ClearTransactions empties the history and resets both totals to zero.
func (r *TransactionRepository) ClearTransactions(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.transactions = nil
	r.totalRevenue = decimal.Zero
	r.totalCost = decimal.Zero
	return nil
}

// FindTransactionByID retrieves a copy of a specific transaction.
func (r *TransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, txn := range r.transactions {
		if txn.TransactionID == transactionID {
			found := txn
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// ListTransactions returns a cloned snapshot of the history in recording order.
func (r *TransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := make([]domain.Transaction, len(r.transactions))
	copy(cloned, r.transactions)
	return cloned, nil
}

// Totals returns the lifetime running aggregates.
func (r *TransactionRepository) Totals(ctx context.Context) (domain.LedgerTotals, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return domain.LedgerTotals{
		TotalRevenue: r.totalRevenue,
		TotalCost:    r.totalCost,
	}, nil
}
