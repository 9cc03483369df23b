package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pharmastock/pharmastock_backend/internal/core/domain"
)

func TestStatusForStock(t *testing.T) {
	testCases := []struct {
		name     string
		stock    int
		expected domain.StockStatus
	}{
		{"zero is out of stock", 0, domain.OutOfStock},
		{"one is low stock", 1, domain.LowStock},
		{"threshold is low stock", 10, domain.LowStock},
		{"just above threshold is in stock", 11, domain.InStock},
		{"large count is in stock", 2800, domain.InStock},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, domain.StatusForStock(tc.stock))
		})
	}
}

func TestItemExpiryFlags(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	expired := domain.Item{ExpiryDate: now.AddDate(0, 0, -1)}
	assert.True(t, expired.IsExpired(now))
	assert.False(t, expired.IsNearExpiry(now), "an already expired item is not near expiry")

	nearExpiry := domain.Item{ExpiryDate: now.AddDate(0, 0, 15)}
	assert.False(t, nearExpiry.IsExpired(now))
	assert.True(t, nearExpiry.IsNearExpiry(now))

	fresh := domain.Item{ExpiryDate: now.AddDate(0, 6, 0)}
	assert.False(t, fresh.IsExpired(now))
	assert.False(t, fresh.IsNearExpiry(now))
}

func TestReportPeriodStartDate(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, now.AddDate(0, 0, -7), domain.PeriodWeek.StartDate(now))
	assert.Equal(t, now.AddDate(0, -1, 0), domain.PeriodMonth.StartDate(now))
	assert.Equal(t, now.AddDate(-1, 0, 0), domain.PeriodYear.StartDate(now))
	assert.True(t, domain.PeriodAll.StartDate(now).IsZero(), "period all should include everything")
}
