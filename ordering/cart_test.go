package ordering

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodtruck/apperr"
)

func TestCartAddAndSubtotal(t *testing.T) {
	carts := NewCarts()
	carts.Add("a@x.com", "Veggie Burger", decimal.RequireFromString("7.99"), 2)
	carts.Add("a@x.com", "Coca-Cola", decimal.RequireFromString("2.49"), 1)

	subtotal := carts.Subtotal("a@x.com")
	assert.True(t, subtotal.Equal(decimal.RequireFromString("18.47")), "got %s", subtotal)

	// quantities accumulate per item
	carts.Add("a@x.com", "Coca-Cola", decimal.RequireFromString("2.49"), 2)
	assert.Equal(t, 3, carts.Get("a@x.com")["Coca-Cola"].Quantity)
}

func TestCartSummaryIsSortedAndStable(t *testing.T) {
	carts := NewCarts()
	carts.Add("a@x.com", "Veggie Burger", decimal.RequireFromString("7.99"), 2)
	carts.Add("a@x.com", "Coca-Cola", decimal.RequireFromString("2.49"), 1)

	assert.Equal(t, "Coca-Cola x1, Veggie Burger x2", carts.Summary("a@x.com"))
	assert.Equal(t, "", carts.Summary("nobody@x.com"))
}

func TestCartSetQuantityAndRemove(t *testing.T) {
	carts := NewCarts()
	carts.Add("a@x.com", "Coca-Cola", decimal.RequireFromString("2.49"), 1)

	require.NoError(t, carts.SetQuantity("a@x.com", "Coca-Cola", 5))
	assert.Equal(t, 5, carts.Get("a@x.com")["Coca-Cola"].Quantity)

	// zero removes the line
	require.NoError(t, carts.SetQuantity("a@x.com", "Coca-Cola", 0))
	assert.Empty(t, carts.Get("a@x.com"))

	assert.ErrorIs(t, carts.SetQuantity("a@x.com", "Coca-Cola", 1), apperr.ErrNotFound)
	assert.ErrorIs(t, carts.Remove("a@x.com", "Coca-Cola"), apperr.ErrNotFound)
}

func TestCartsAreIsolatedPerOwnerAndClearable(t *testing.T) {
	carts := NewCarts()
	carts.Add("a@x.com", "Coca-Cola", decimal.RequireFromString("2.49"), 1)
	carts.Add("b@x.com", "Veggie Burger", decimal.RequireFromString("7.99"), 1)

	carts.Clear("a@x.com")
	assert.Empty(t, carts.Get("a@x.com"))
	assert.Len(t, carts.Get("b@x.com"), 1)
}
