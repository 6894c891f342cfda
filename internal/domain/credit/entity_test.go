package credit

import (
	"testing"
	"time"

	"github.com/hugohenrick/moneywise/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry_Defaults(t *testing.T) {
	now := time.Now()
	e, err := NewEntry("Maria", decimal.NewFromInt(50), now)
	require.NoError(t, err)

	assert.False(t, e.Paid)
	assert.Nil(t, e.DueDate)
	assert.True(t, now.Equal(e.SaleDate.Time))
	assert.Contains(t, e.ID, IDPrefix)

	_, err = NewEntry(" ", decimal.NewFromInt(1), now)
	assert.ErrorIs(t, err, ErrEmptyCustomerName)
}

func TestPendingTotals_SkipsPaidAndInvalidDates(t *testing.T) {
	now := domain.NewTimestamp(time.Now())
	entries := []Entry{
		{CustomerName: "A", Amount: decimal.RequireFromString("10.50"), SaleDate: now},
		{CustomerName: "B", Amount: decimal.RequireFromString("4.50"), SaleDate: now},
		{CustomerName: "C", Amount: decimal.NewFromInt(100), SaleDate: now, Paid: true},
		{CustomerName: "D", Amount: decimal.NewFromInt(7)},
	}

	total, count := PendingTotals(entries)
	assert.Equal(t, "15.00", total.StringFixed(2))
	assert.Equal(t, 2, count)
}

func TestSort_MostRecentFirst(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	entries := []Entry{
		{ID: "old", SaleDate: domain.NewTimestamp(base)},
		{ID: "invalid"},
		{ID: "new", SaleDate: domain.NewTimestamp(base.Add(48 * time.Hour))},
	}

	Sort(entries)
	assert.Equal(t, "new", entries[0].ID)
	assert.Equal(t, "old", entries[1].ID)
	assert.Equal(t, "invalid", entries[2].ID)
}
