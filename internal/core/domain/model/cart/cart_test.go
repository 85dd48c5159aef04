package cart_test

import (
	"math"
	"testing"

	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuItem(t *testing.T, restaurantID kernel.UUID, name string, price float64) *catalog.MenuItem {
	t.Helper()
	m, err := catalog.NewMenuItem(kernel.NewUUID(), restaurantID, name, kernel.MustMoney(price), name+".png")
	require.NoError(t, err)
	return m
}

func newCart(t *testing.T, restaurantID kernel.UUID) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(kernel.NewUUID(), kernel.NewUUID(), restaurantID)
	require.NoError(t, err)
	return c
}

func assertTotalsConsistent(t *testing.T, c *cart.Cart) {
	t.Helper()
	count := 0
	total := kernel.ZeroMoney()
	for _, it := range c.Items() {
		count += it.Quantity()
		total = total.Add(it.UnitPrice().Times(it.Quantity()))
	}
	assert.Equal(t, count, c.ItemCount())
	assert.True(t, total.Equal(c.TotalAmount()), "total %s, want %s", c.TotalAmount(), total)
}

func TestNewCart(t *testing.T) {
	c := newCart(t, kernel.NewUUID())

	assert.True(t, c.IsEmpty())
	assert.Zero(t, c.ItemCount())
	assert.True(t, c.TotalAmount().IsZero())
	assert.NoError(t, c.Validate())

	_, err := cart.NewCart(kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID())
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCart_AddItem(t *testing.T) {
	restaurantID := kernel.NewUUID()
	dosa := menuItem(t, restaurantID, "Dosa", 50)
	chai := menuItem(t, restaurantID, "Chai", 20)

	t.Run("new lines and merged quantities", func(t *testing.T) {
		c := newCart(t, restaurantID)

		first, err := c.AddItem(kernel.NewUUID(), restaurantID, dosa, 1)
		require.NoError(t, err)
		_, err = c.AddItem(kernel.NewUUID(), restaurantID, chai, 2)
		require.NoError(t, err)
		merged, err := c.AddItem(kernel.NewUUID(), restaurantID, chai, 1)
		require.NoError(t, err)

		require.Len(t, c.Items(), 2)
		assert.Equal(t, "Dosa", first.Name())
		assert.Equal(t, 3, merged.Quantity())
		assert.Equal(t, 4, c.ItemCount())
		assert.Equal(t, "110.00", c.TotalAmount().String())
		assertTotalsConsistent(t, c)
	})

	t.Run("other restaurant conflicts and leaves cart unchanged", func(t *testing.T) {
		c := newCart(t, restaurantID)
		_, err := c.AddItem(kernel.NewUUID(), restaurantID, dosa, 2)
		require.NoError(t, err)

		otherRestaurant := kernel.NewUUID()
		_, err = c.AddItem(kernel.NewUUID(), otherRestaurant, menuItem(t, otherRestaurant, "Pizza", 9), 1)

		require.ErrorIs(t, err, cart.ErrConflictingRestaurant)
		require.ErrorIs(t, err, errs.ErrRuleViolation)
		assert.Len(t, c.Items(), 1)
		assert.Equal(t, 2, c.ItemCount())
		assert.Equal(t, "100.00", c.TotalAmount().String())
	})

	t.Run("menu item of another restaurant", func(t *testing.T) {
		c := newCart(t, restaurantID)

		_, err := c.AddItem(kernel.NewUUID(), restaurantID, menuItem(t, kernel.NewUUID(), "Pizza", 9), 1)

		require.ErrorIs(t, err, cart.ErrMenuItemNotInRestaurant)
		assert.True(t, c.IsEmpty())
	})

	t.Run("quantity below one", func(t *testing.T) {
		c := newCart(t, restaurantID)

		for _, q := range []int{0, -3} {
			_, err := c.AddItem(kernel.NewUUID(), restaurantID, dosa, q)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
		assert.True(t, c.IsEmpty())
	})

	t.Run("quantity overflow", func(t *testing.T) {
		c := newCart(t, restaurantID)
		_, err := c.AddItem(kernel.NewUUID(), restaurantID, dosa, math.MaxInt)
		require.NoError(t, err)

		_, err = c.AddItem(kernel.NewUUID(), restaurantID, dosa, 1)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("merge picks up the current price", func(t *testing.T) {
		c := newCart(t, restaurantID)
		_, err := c.AddItem(kernel.NewUUID(), restaurantID, dosa, 1)
		require.NoError(t, err)

		repriced, err := catalog.NewMenuItem(dosa.ID(), restaurantID, "Dosa", kernel.MustMoney(55), "")
		require.NoError(t, err)
		_, err = c.AddItem(kernel.NewUUID(), restaurantID, repriced, 1)
		require.NoError(t, err)

		assert.Equal(t, "110.00", c.TotalAmount().String())
	})
}

func TestCart_ChangeItemQuantity(t *testing.T) {
	restaurantID := kernel.NewUUID()
	dosa := menuItem(t, restaurantID, "Dosa", 50)
	chai := menuItem(t, restaurantID, "Chai", 20)

	setup := func(t *testing.T) (*cart.Cart, *cart.Item, *cart.Item) {
		c := newCart(t, restaurantID)
		a, err := c.AddItem(kernel.NewUUID(), restaurantID, dosa, 1)
		require.NoError(t, err)
		b, err := c.AddItem(kernel.NewUUID(), restaurantID, chai, 3)
		require.NoError(t, err)
		return c, a, b
	}

	tests := []struct {
		name        string
		delta       int
		wantRemoved bool
		wantCount   int
		wantTotal   string
	}{
		{name: "increment", delta: 2, wantCount: 6, wantTotal: "150.00"},
		{name: "decrement", delta: -1, wantCount: 3, wantTotal: "90.00"},
		{name: "to zero removes", delta: -3, wantRemoved: true, wantCount: 1, wantTotal: "50.00"},
		{name: "below zero removes", delta: -10, wantRemoved: true, wantCount: 1, wantTotal: "50.00"},
		{name: "remove delta", delta: cart.RemoveDelta, wantRemoved: true, wantCount: 1, wantTotal: "50.00"},
		{name: "zero delta", delta: 0, wantCount: 4, wantTotal: "110.00"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, _, line := setup(t)

			removed, err := c.ChangeItemQuantity(line.ID(), tc.delta)

			require.NoError(t, err)
			assert.Equal(t, tc.wantRemoved, removed)
			assert.Equal(t, tc.wantCount, c.ItemCount())
			assert.Equal(t, tc.wantTotal, c.TotalAmount().String())
			assertTotalsConsistent(t, c)
		})
	}

	t.Run("removing every line empties the cart", func(t *testing.T) {
		c, a, b := setup(t)

		require.NoError(t, c.RemoveItem(a.ID()))
		require.NoError(t, c.RemoveItem(b.ID()))

		assert.True(t, c.IsEmpty())
		assert.Zero(t, c.ItemCount())
		assert.True(t, c.TotalAmount().IsZero())
	})

	t.Run("unknown line", func(t *testing.T) {
		c, _, _ := setup(t)

		_, err := c.ChangeItemQuantity(kernel.NewUUID(), 1)

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("overflow", func(t *testing.T) {
		c, a, _ := setup(t)

		_, err := c.ChangeItemQuantity(a.ID(), math.MaxInt)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, 4, c.ItemCount())
	})
}

func TestRestoreCart(t *testing.T) {
	items := []*cart.Item{
		cart.RestoreItem(kernel.NewUUID(), kernel.NewUUID(), "Dosa", kernel.MustMoney(50), "", 1),
		cart.RestoreItem(kernel.NewUUID(), kernel.NewUUID(), "Chai", kernel.MustMoney(20), "", 3),
	}

	c := cart.RestoreCart(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), items)

	assert.Equal(t, 4, c.ItemCount())
	assert.Equal(t, "110.00", c.TotalAmount().String())
	got, ok := c.Item(items[1].ID())
	require.True(t, ok)
	assert.Equal(t, "Chai", got.Name())
}

func TestErrCartItemNotOwned(t *testing.T) {
	assert.ErrorIs(t, cart.ErrCartItemNotOwned, errs.ErrObjectNotFound)
}
