package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemCategory classifies a stocked pharmacy product.
type ItemCategory string

const (
	CategoryTablets      ItemCategory = "tablets"
	CategorySyrups       ItemCategory = "syrups"
	CategoryOintments    ItemCategory = "ointments"
	CategoryDrugs        ItemCategory = "drugs"
	CategorySyringes     ItemCategory = "syringes"
	CategoryGlucoseWater ItemCategory = "glucose-water"
	CategoryOther        ItemCategory = "other"
)

// StockStatus is the derived three-way classification of an item's remaining stock.
// It is never set directly by callers; every mutation recomputes it via StatusForStock.
type StockStatus string

const (
	InStock    StockStatus = "in-stock"
	LowStock   StockStatus = "low-stock"
	OutOfStock StockStatus = "out-of-stock"
)

// LowStockThreshold is the upper bound (inclusive) of the low-stock band.
const LowStockThreshold = 10

// StatusForStock classifies a stock count: 0 is out-of-stock, 1..LowStockThreshold
// is low-stock, anything above is in-stock.
func StatusForStock(currentStock int) StockStatus {
	switch {
	case currentStock == 0:
		return OutOfStock
	case currentStock <= LowStockThreshold:
		return LowStock
	default:
		return InStock
	}
}

// StockDirection selects whether a stock adjustment adds or removes units.
type StockDirection string

const (
	StockAdd      StockDirection = "add"
	StockSubtract StockDirection = "subtract"
)

// Item represents one stocked pharmacy product.
// Quantity is the initial count at creation and is informational only;
// CurrentStock is the single mutable stock field.
type Item struct {
	ItemID          string          `json:"itemID"`
	Name            string          `json:"name"`
	Category        ItemCategory    `json:"category"`
	ManufactureDate time.Time       `json:"manufactureDate"`
	ExpiryDate      time.Time       `json:"expiryDate"`
	Price           decimal.Decimal `json:"price"` // Non-negative unit price
	Quantity        int             `json:"quantity"`
	CurrentStock    int             `json:"currentStock"`
	StockStatus     StockStatus     `json:"stockStatus"`
	Description     string          `json:"description"`  // Nullable
	Manufacturer    string          `json:"manufacturer"` // Nullable
	BatchNumber     string          `json:"batchNumber"`  // Nullable
	AuditFields
}

// IsExpired reports whether the item's expiry date is in the past relative to now.
func (i Item) IsExpired(now time.Time) bool {
	return i.ExpiryDate.Before(now)
}

// IsNearExpiry reports whether the item expires within the next 30 days.
func (i Item) IsNearExpiry(now time.Time) bool {
	cutoff := now.Add(30 * 24 * time.Hour)
	return !i.ExpiryDate.After(cutoff) && i.ExpiryDate.After(now)
}
