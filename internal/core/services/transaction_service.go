package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pharmastock/pharmastock_backend/internal/apperrors"
	"github.com/pharmastock/pharmastock_backend/internal/core/domain"
	portsrepo "github.com/pharmastock/pharmastock_backend/internal/core/ports/repositories"
	portssvc "github.com/pharmastock/pharmastock_backend/internal/core/ports/services"
	"github.com/pharmastock/pharmastock_backend/internal/dto"
)

// transactionService implements the sale/purchase workflow across both ledgers.
type transactionService struct {
	BaseService
	txnRepo  portsrepo.TransactionRepositoryFacade
	itemRepo portsrepo.ItemRepositoryFacade
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, itemRepo portsrepo.ItemRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{
		txnRepo:  txnRepo,
		itemRepo: itemRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// RecordTransaction runs the two-step workflow: validate against the
// inventory ledger, append to the transaction ledger, then move stock.
// A sale that would exceed the available stock is rejected before either
// ledger is touched.
func (s *transactionService) RecordTransaction(ctx context.Context, req dto.RecordTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	logger := s.GetLogger(ctx)

	if req.PricePerUnit.IsNegative() {
		return nil, fmt.Errorf("%w: pricePerUnit must not be negative", apperrors.ErrValidation)
	}

	item, err := s.itemRepo.FindItemByID(ctx, req.ItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to find item %s: %w", req.ItemID, err)
	}

	if req.Type == domain.Sale && item.CurrentStock < req.Quantity {
		logger.Warn("Sale rejected for insufficient stock",
			"item_id", item.ItemID,
			"requested", req.Quantity,
			"available", item.CurrentStock,
		)
		return nil, fmt.Errorf("%w: requested %d, available %d", apperrors.ErrInsufficientStock, req.Quantity, item.CurrentStock)
	}

	now := time.Now()
	txnDate := now
	if req.Date != nil {
		txnDate = *req.Date
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		ItemID:        item.ItemID,
		ItemName:      item.Name,
		Type:          req.Type,
		Quantity:      req.Quantity,
		PricePerUnit:  req.PricePerUnit,
		TotalAmount:   req.PricePerUnit.Mul(decimal.NewFromInt(int64(req.Quantity))),
		Date:          txnDate,
		CustomerName:  req.CustomerName,
		SupplierName:  req.SupplierName,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		BatchNumber:   req.BatchNumber,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", "item_id", item.ItemID)
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	direction := domain.StockSubtract
	if req.Type == domain.Purchase {
		direction = domain.StockAdd
	}

	// Second step of the workflow. If this fails the transaction has already
	// been recorded; the error is surfaced so the caller can reconcile.
	if _, err := s.itemRepo.AdjustStock(ctx, item.ItemID, req.Quantity, direction); err != nil {
		s.LogError(ctx, err, "Transaction recorded but stock adjustment failed",
			"transaction_id", txn.TransactionID,
			"item_id", item.ItemID,
		)
		return nil, fmt.Errorf("transaction %s recorded but stock adjustment failed: %w", txn.TransactionID, err)
	}

	logger.Info("Transaction recorded",
		"transaction_id", txn.TransactionID,
		"type", string(txn.Type),
		"item_id", txn.ItemID,
		"quantity", txn.Quantity,
		"total_amount", txn.TotalAmount.String(),
	)
	return &txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	now := time.Now()
	filtered := make([]domain.Transaction, 0, len(txns))
	for _, txn := range txns {
		if params.Type != "" && string(txn.Type) != params.Type {
			continue
		}
		if !inListPeriod(txn.Date, params.Period, now) {
			continue
		}
		filtered = append(filtered, txn)
	}
	return filtered, nil
}

// inListPeriod reports whether date falls inside the list filter window.
// "today" means the same calendar day as now.
func inListPeriod(date time.Time, period string, now time.Time) bool {
	switch period {
	case "today":
		y1, m1, d1 := date.Date()
		y2, m2, d2 := now.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	case "week":
		return !date.Before(now.AddDate(0, 0, -7))
	case "month":
		return !date.Before(now.AddDate(0, -1, 0))
	default: // all
		return true
	}
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	logger := s.GetLogger(ctx)

	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", "transaction_id", transactionID)
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}

	logger.Info("Transaction deleted", "transaction_id", transactionID)
	return nil
}

func (s *transactionService) ClearTransactions(ctx context.Context) error {
	logger := s.GetLogger(ctx)

	if err := s.txnRepo.ClearTransactions(ctx); err != nil {
		s.LogError(ctx, err, "Failed to clear transactions")
		return fmt.Errorf("failed to clear transactions: %w", err)
	}

	logger.Info("Transaction history cleared")
	return nil
}

func (s *transactionService) Totals(ctx context.Context) (domain.LedgerTotals, error) {
	totals, err := s.txnRepo.Totals(ctx)
	if err != nil {
		return domain.LedgerTotals{}, fmt.Errorf("failed to read ledger totals: %w", err)
	}
	return totals, nil
}
