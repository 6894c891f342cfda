package product

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct_AllowsZeroPrice(t *testing.T) {
	p, err := NewProduct("Brinde", "BR01", decimal.Zero, "", "", time.Now())
	require.NoError(t, err)
	assert.True(t, p.Price.IsZero())

	_, err = NewProduct("Brinde", "BR01", decimal.NewFromInt(-1), "", "", time.Now())
	assert.ErrorIs(t, err, ErrNegativePrice)

	_, err = NewProduct("Brinde", "", decimal.Zero, "", "", time.Now())
	assert.ErrorIs(t, err, ErrEmptyCode)
}

func TestIsLowStock(t *testing.T) {
	cases := []struct {
		stock string
		low   bool
	}{
		{"0", false},
		{"1", true},
		{"5", true},
		{" 3 ", true},
		{"6", false},
		{"", false},
		{"muitos", false},
		{"-2", false},
		{"2.5", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.low, Product{Stock: tc.stock}.IsLowStock(), "estoque %q", tc.stock)
	}
}

func TestFindByNameOrCode(t *testing.T) {
	list := []Product{{ID: "1", Name: "Café Torrado", Code: "CAF500"}}

	byName, ok := FindByNameOrCode(list, "café torrado")
	require.True(t, ok)
	assert.Equal(t, "1", byName.ID)

	byCode, ok := FindByNameOrCode(list, "caf500")
	require.True(t, ok)
	assert.Equal(t, "1", byCode.ID)

	_, ok = FindByNameOrCode(list, "Chá")
	assert.False(t, ok)
}

func TestSort(t *testing.T) {
	list := []Product{{ID: "b", Name: "Pão"}, {ID: "a", Name: "arroz"}, {ID: "c", Name: "Feijão"}}
	Sort(list)
	assert.Equal(t, "arroz", list[0].Name)
	assert.Equal(t, "Feijão", list[1].Name)
	assert.Equal(t, "Pão", list[2].Name)
}
