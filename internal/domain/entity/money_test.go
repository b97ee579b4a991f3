package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCentsFromDecimal(t *testing.T) {
	assert.Equal(t, int64(12600), CentsFromDecimal(126.00))
	assert.Equal(t, int64(350), CentsFromDecimal(3.50))
	// Rounds half away from zero, never truncates
	assert.Equal(t, int64(13), CentsFromDecimal(0.125))
	assert.Equal(t, int64(10), CentsFromDecimal(0.099999999))
	assert.Equal(t, int64(-500), CentsFromDecimal(-5.00))
}

func TestDecimalFromCents(t *testing.T) {
	assert.Equal(t, 126.00, DecimalFromCents(12600))
	assert.Equal(t, -24.00, DecimalFromCents(-2400))
}

func TestRoundPercent(t *testing.T) {
	// 5% of 120.00 is exactly 6.00
	assert.Equal(t, int64(600), RoundPercent(12000, 5))
	// 7.5% of 9.99 is 0.74925, rounded to 0.75
	assert.Equal(t, int64(75), RoundPercent(999, 7.5))
	assert.Equal(t, int64(0), RoundPercent(12000, 0))
}

func TestInvoiceNumberFor(t *testing.T) {
	orderID := uuid.MustParse("a1b2c3d4-0000-0000-0000-000000000001")
	issuedAt := time.Date(2026, 3, 15, 23, 30, 0, 0, time.UTC)

	got := InvoiceNumberFor(orderID, issuedAt)
	assert.Equal(t, "INV-20260315-a1b2c3d4-0000-0000-0000-000000000001", got)

	// Same inputs always produce the same number
	assert.Equal(t, got, InvoiceNumberFor(orderID, issuedAt))
}

func TestStockDeltas_AggregatesDuplicateItems(t *testing.T) {
	itemA := uuid.New()
	itemB := uuid.New()
	order := &Order{
		Lines: []OrderLine{
			{ItemID: itemA, Quantity: 2},
			{ItemID: itemB, Quantity: 1},
			{ItemID: itemA, Quantity: 3},
		},
	}

	deltas := order.StockDeltas()
	assert.Equal(t, map[uuid.UUID]int{itemA: 5, itemB: 1}, deltas)
}
