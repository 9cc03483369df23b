package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/pharmastock/pharmastock_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

const seededBy = "system-seed"

// SeedSampleData loads the static sample catalog and transaction history into
// the ledgers. It is meant for fresh in-memory stores; seeding stops at the
// first error so a partially seeded store is never silently accepted.
func SeedSampleData(ctx context.Context, items *ItemRepository, transactions *TransactionRepository) error {
	now := time.Now().UTC()

	for _, item := range sampleItems(now) {
		if err := items.SaveItem(ctx, item); err != nil {
			return fmt.Errorf("failed to seed item %s: %w", item.ItemID, err)
		}
	}
	for _, txn := range sampleTransactions(now) {
		if err := transactions.SaveTransaction(ctx, txn); err != nil {
			return fmt.Errorf("failed to seed transaction %s: %w", txn.TransactionID, err)
		}
	}
	return nil
}

func date(value string) time.Time {
	parsed, _ := time.Parse("2006-01-02", value)
	return parsed
}

func sampleItems(now time.Time) []domain.Item {
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     seededBy,
		LastUpdatedAt: now,
		LastUpdatedBy: seededBy,
	}
	return []domain.Item{
		{
			ItemID:          "item-1",
			Name:            "Paracetamol 500mg",
			Category:        domain.CategoryTablets,
			ManufactureDate: date("2024-01-15"),
			ExpiryDate:      date("2026-01-15"),
			Price:           decimal.NewFromFloat(0.25),
			Quantity:        1000,
			CurrentStock:    800,
			Description:     "Pain relief and fever reducer",
			Manufacturer:    "MedCorp",
			BatchNumber:     "PCM2024-001",
			AuditFields:     audit,
		},
		{
			ItemID:          "item-2",
			Name:            "Cough Syrup",
			Category:        domain.CategorySyrups,
			ManufactureDate: date("2024-02-10"),
			ExpiryDate:      date("2025-02-10"),
			Price:           decimal.NewFromFloat(8.99),
			Quantity:        100,
			CurrentStock:    45,
			Description:     "Relief for dry and chesty coughs",
			Manufacturer:    "PharmaDist",
			BatchNumber:     "CS2024-045",
			AuditFields:     audit,
		},
		{
			ItemID:          "item-3",
			Name:            "Antiseptic Cream",
			Category:        domain.CategoryOintments,
			ManufactureDate: date("2024-03-05"),
			ExpiryDate:      date("2025-12-05"),
			Price:           decimal.NewFromFloat(4.50),
			Quantity:        200,
			CurrentStock:    85,
			Description:     "Prevents infection in minor cuts and wounds",
			Manufacturer:    "HealthCare Plus",
			BatchNumber:     "AC2024-078",
			AuditFields:     audit,
		},
		{
			ItemID:          "item-4",
			Name:            "Insulin Pen",
			Category:        domain.CategoryDrugs,
			ManufactureDate: date("2024-01-20"),
			ExpiryDate:      date("2025-01-20"),
			Price:           decimal.NewFromFloat(25.00),
			Quantity:        50,
			CurrentStock:    12,
			Description:     "Fast-acting insulin for diabetes management",
			Manufacturer:    "Diabetes Care Ltd",
			BatchNumber:     "INS2024-012",
			AuditFields:     audit,
		},
		{
			ItemID:          "item-5",
			Name:            "Disposable Syringes",
			Category:        domain.CategorySyringes,
			ManufactureDate: date("2024-04-01"),
			ExpiryDate:      date("2027-04-01"),
			Price:           decimal.NewFromFloat(0.15),
			Quantity:        5000,
			CurrentStock:    2800,
			Description:     "1ml disposable syringes with safety lock",
			Manufacturer:    "MedSupply Co",
			BatchNumber:     "SYR2024-234",
			AuditFields:     audit,
		},
		{
			ItemID:          "item-6",
			Name:            "Glucose Solution 5%",
			Category:        domain.CategoryGlucoseWater,
			ManufactureDate: date("2024-02-15"),
			ExpiryDate:      date("2025-08-15"),
			Price:           decimal.NewFromFloat(3.20),
			Quantity:        100,
			CurrentStock:    25,
			Description:     "IV glucose solution for hypoglycemia",
			Manufacturer:    "IV Solutions Ltd",
			BatchNumber:     "GLU2024-089",
			AuditFields:     audit,
		},
		{
			ItemID:          "item-7",
			Name:            "Aspirin 100mg",
			Category:        domain.CategoryTablets,
			ManufactureDate: date("2024-01-10"),
			ExpiryDate:      date("2024-12-10"),
			Price:           decimal.NewFromFloat(0.18),
			Quantity:        500,
			CurrentStock:    0,
			Description:     "Low-dose aspirin for cardiovascular protection",
			Manufacturer:    "CardioMed",
			BatchNumber:     "ASP2024-156",
			AuditFields:     audit,
		},
		{
			ItemID:          "item-8",
			Name:            "Vitamin D3 Tablets",
			Category:        domain.CategoryTablets,
			ManufactureDate: date("2024-03-01"),
			ExpiryDate:      date("2026-03-01"),
			Price:           decimal.NewFromFloat(12.99),
			Quantity:        120,
			CurrentStock:    8,
			Description:     "Vitamin D3 1000 IU supplements",
			Manufacturer:    "VitaHealth",
			BatchNumber:     "VD32024-045",
			AuditFields:     audit,
		},
		{
			ItemID:          "item-9",
			Name:            "Antibacterial Gel",
			Category:        domain.CategoryOintments,
			ManufactureDate: date("2024-02-20"),
			ExpiryDate:      date("2024-11-30"),
			Price:           decimal.NewFromFloat(6.75),
			Quantity:        80,
			CurrentStock:    15,
			Description:     "Hand sanitizing gel with 70% alcohol",
			Manufacturer:    "CleanHands Inc",
			BatchNumber:     "ABG2024-123",
			AuditFields:     audit,
		},
		{
			ItemID:          "item-10",
			Name:            "Blood Pressure Monitor",
			Category:        domain.CategoryOther,
			ManufactureDate: date("2024-01-05"),
			ExpiryDate:      date("2029-01-05"),
			Price:           decimal.NewFromFloat(89.99),
			Quantity:        20,
			CurrentStock:    5,
			Description:     "Digital blood pressure monitor with memory",
			Manufacturer:    "HealthTech Pro",
			BatchNumber:     "BPM2024-007",
			AuditFields:     audit,
		},
	}
}

func sampleTransactions(now time.Time) []domain.Transaction {
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     seededBy,
		LastUpdatedAt: now,
		LastUpdatedBy: seededBy,
	}
	return []domain.Transaction{
		{
			TransactionID: "sale-1",
			ItemID:        "item-1",
			ItemName:      "Paracetamol 500mg",
			Type:          domain.Sale,
			Quantity:      50,
			PricePerUnit:  decimal.NewFromFloat(0.25),
			TotalAmount:   decimal.NewFromFloat(12.50),
			Date:          now.AddDate(0, 0, -2),
			CustomerName:  "John Smith",
			PaymentMethod: domain.PaymentCash,
			AuditFields:   audit,
		},
		{
			TransactionID: "sale-2",
			ItemID:        "item-2",
			ItemName:      "Cough Syrup",
			Type:          domain.Sale,
			Quantity:      3,
			PricePerUnit:  decimal.NewFromFloat(8.99),
			TotalAmount:   decimal.NewFromFloat(26.97),
			Date:          now.AddDate(0, 0, -3),
			CustomerName:  "Mary Johnson",
			PaymentMethod: domain.PaymentCard,
			AuditFields:   audit,
		},
		{
			TransactionID: "sale-3",
			ItemID:        "item-3",
			ItemName:      "Antiseptic Cream",
			Type:          domain.Sale,
			Quantity:      2,
			PricePerUnit:  decimal.NewFromFloat(4.50),
			TotalAmount:   decimal.NewFromFloat(9.00),
			Date:          now.AddDate(0, 0, -5),
			CustomerName:  "Robert Brown",
			PaymentMethod: domain.PaymentCash,
			AuditFields:   audit,
		},
		{
			TransactionID: "purchase-1",
			ItemID:        "item-1",
			ItemName:      "Paracetamol 500mg",
			Type:          domain.Purchase,
			Quantity:      1000,
			PricePerUnit:  decimal.NewFromFloat(0.12),
			TotalAmount:   decimal.NewFromFloat(120.00),
			Date:          now.AddDate(0, 0, -15),
			SupplierName:  "MedCorp Supplies",
			BatchNumber:   "PCM2024-001",
			PaymentMethod: domain.PaymentBankTransfer,
			AuditFields:   audit,
		},
		{
			TransactionID: "purchase-2",
			ItemID:        "item-2",
			ItemName:      "Cough Syrup",
			Type:          domain.Purchase,
			Quantity:      100,
			PricePerUnit:  decimal.NewFromFloat(4.20),
			TotalAmount:   decimal.NewFromFloat(420.00),
			Date:          now.AddDate(0, 0, -20),
			SupplierName:  "PharmaDist Inc.",
			BatchNumber:   "CS2024-045",
			PaymentMethod: domain.PaymentBankTransfer,
			AuditFields:   audit,
		},
		{
			TransactionID: "purchase-3",
			ItemID:        "item-4",
			ItemName:      "Insulin Pen",
			Type:          domain.Purchase,
			Quantity:      50,
			PricePerUnit:  decimal.NewFromFloat(15.00),
			TotalAmount:   decimal.NewFromFloat(750.00),
			Date:          now.AddDate(0, 0, -25),
			SupplierName:  "Diabetes Care Ltd",
			BatchNumber:   "INS2024-012",
			PaymentMethod: domain.PaymentBankTransfer,
			AuditFields:   audit,
		},
	}
}
