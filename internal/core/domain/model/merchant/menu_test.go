package merchant_test

import (
	"testing"

	"foodorder/internal/core/domain/model/merchant"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMenuItem(t *testing.T, name string, price int) merchant.MenuItem {
	t.Helper()
	item, err := merchant.NewMenuItem(name, price)
	require.NoError(t, err)
	return item
}

func TestNewMenuItem(t *testing.T) {
	t.Run("should create valid item", func(t *testing.T) {
		item, err := merchant.NewMenuItem("Fried", 17000)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, "Fried", item.Name())
		assert.Equal(t, 17000, item.Price())
	})

	t.Run("should allow zero price", func(t *testing.T) {
		_, err := merchant.NewMenuItem("Free Sauce", 0)
		require.NoError(t, err)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := merchant.NewMenuItem("", 17000)

		require.Error(t, err)
		assert.Equal(t, merchant.ErrMenuItemNameIsRequired, err)
	})

	t.Run("should fail with negative price", func(t *testing.T) {
		_, err := merchant.NewMenuItem("Fried", -1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "price is invalid")
	})
}

func TestNewMenu(t *testing.T) {
	t.Run("should create menu preserving item order", func(t *testing.T) {
		items := []merchant.MenuItem{
			mustMenuItem(t, "Fried", 17000),
			mustMenuItem(t, "Seasoned", 18000),
			mustMenuItem(t, "Half & Half", 18000),
		}

		menu, err := merchant.NewMenu(items)

		require.NoError(t, err)
		require.NoError(t, menu.Validate())
		assert.Equal(t, 3, menu.Len())
		got := menu.Items()
		assert.Equal(t, "Fried", got[0].Name())
		assert.Equal(t, "Seasoned", got[1].Name())
		assert.Equal(t, "Half & Half", got[2].Name())
	})

	t.Run("should fail with no items", func(t *testing.T) {
		_, err := merchant.NewMenu(nil)

		require.Error(t, err)
		assert.Equal(t, merchant.ErrMenuIsEmpty, err)
	})

	t.Run("should fail with duplicate item names", func(t *testing.T) {
		items := []merchant.MenuItem{
			mustMenuItem(t, "Fried", 17000),
			mustMenuItem(t, "Fried", 16000),
		}

		_, err := merchant.NewMenu(items)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate item name")
	})

	t.Run("should fail with unconstructed item", func(t *testing.T) {
		_, err := merchant.NewMenu([]merchant.MenuItem{{}})

		require.Error(t, err)
		assert.Equal(t, merchant.ErrMenuItemIsNotConstructed, err)
	})

	t.Run("should copy the items slice", func(t *testing.T) {
		items := []merchant.MenuItem{mustMenuItem(t, "Fried", 17000)}
		menu, err := merchant.NewMenu(items)
		require.NoError(t, err)

		items[0] = mustMenuItem(t, "Seasoned", 18000)

		assert.Equal(t, "Fried", menu.Items()[0].Name())
	})
}

func TestMenu_ItemAt(t *testing.T) {
	menu, err := merchant.NewMenu([]merchant.MenuItem{
		mustMenuItem(t, "Fried", 17000),
		mustMenuItem(t, "Seasoned", 18000),
	})
	require.NoError(t, err)

	t.Run("should return item at position", func(t *testing.T) {
		item, err := menu.ItemAt(1)

		require.NoError(t, err)
		assert.Equal(t, "Seasoned", item.Name())
	})

	t.Run("should reject out of range positions", func(t *testing.T) {
		for _, position := range []int{-1, 2, 99} {
			_, err := menu.ItemAt(position)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})
}

func TestMenu_PriceOf(t *testing.T) {
	menu, err := merchant.NewMenu([]merchant.MenuItem{
		mustMenuItem(t, "Fried", 17000),
	})
	require.NoError(t, err)

	t.Run("should return price of known item", func(t *testing.T) {
		price, err := menu.PriceOf("Fried")

		require.NoError(t, err)
		assert.Equal(t, 17000, price)
	})

	t.Run("should return not found for unknown item", func(t *testing.T) {
		_, err := menu.PriceOf("Sushi")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestMenu_Validate(t *testing.T) {
	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var menu merchant.Menu

		err := menu.Validate()

		require.Error(t, err)
		assert.Equal(t, merchant.ErrMenuIsNotConstructed, err)
	})
}
