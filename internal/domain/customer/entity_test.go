package customer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	now := time.Now()
	c, err := NewCustomer("  João Silva ", "(11) 91234-5678", "", "", now)
	require.NoError(t, err)

	assert.Equal(t, "João Silva", c.Name)
	assert.Equal(t, "(11) 91234-5678", c.Phone)
	assert.Contains(t, c.ID, IDPrefix)
	assert.True(t, now.Equal(c.CreatedAt.Time))

	_, err = NewCustomer("", "123", "", "", now)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewCustomer("Ana", " ", "", "", now)
	assert.ErrorIs(t, err, ErrEmptyPhone)
}

func TestSort_ByNameIsStable(t *testing.T) {
	list := []Customer{
		{ID: "3", Name: "carla"},
		{ID: "1", Name: "Bruno"},
		{ID: "2", Name: "ana"},
		{ID: "0", Name: "Ana"},
	}

	Sort(list)
	assert.Equal(t, []string{"0", "2", "1", "3"}, ids(list))

	again := append([]Customer(nil), list...)
	Sort(again)
	assert.Equal(t, list, again)
}

func TestFindByName(t *testing.T) {
	list := []Customer{{ID: "1", Name: "Maria Souza"}}

	found, ok := FindByName(list, "maria souza")
	require.True(t, ok)
	assert.Equal(t, "1", found.ID)

	_, ok = FindByName(list, "Maria")
	assert.False(t, ok)
}

func ids(list []Customer) []string {
	out := make([]string, len(list))
	for i, c := range list {
		out[i] = c.ID
	}
	return out
}
