package memory_test

import (
	"context"
	"testing"

	"foodorder/internal/adapters/out/memory"
	"foodorder/internal/core/domain/model/courier"
	"foodorder/internal/core/domain/model/merchant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildMerchant(t *testing.T, name string) *merchant.Merchant {
	t.Helper()

	agent, err := courier.NewDeliveryAgent("Max")
	require.NoError(t, err)
	item, err := merchant.NewMenuItem("Fried", 17000)
	require.NoError(t, err)
	menu, err := merchant.NewMenu([]merchant.MenuItem{item})
	require.NoError(t, err)
	m, err := merchant.NewMerchant(name, menu, agent)
	require.NoError(t, err)
	return m
}

func TestNewCatalog(t *testing.T) {
	t.Run("creates catalog from merchants", func(t *testing.T) {
		catalog, err := memory.NewCatalog(
			buildMerchant(t, "Chicken House"),
			buildMerchant(t, "Golden Chicken"),
		)

		require.NoError(t, err)

		all, err := catalog.All(context.Background())
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "Chicken House", all[0].Name())
		assert.Equal(t, "Golden Chicken", all[1].Name())
	})

	t.Run("requires at least one merchant", func(t *testing.T) {
		_, err := memory.NewCatalog()

		require.Error(t, err)
		assert.Equal(t, memory.ErrMerchantsAreRequired, err)
	})

	t.Run("rejects unconstructed merchants", func(t *testing.T) {
		var m merchant.Merchant

		_, err := memory.NewCatalog(&m)

		require.Error(t, err)
	})
}

func TestCatalog_All(t *testing.T) {
	t.Run("returns a copy of the merchant slice", func(t *testing.T) {
		catalog, err := memory.NewCatalog(buildMerchant(t, "Chicken House"))
		require.NoError(t, err)

		first, err := catalog.All(context.Background())
		require.NoError(t, err)
		first[0] = buildMerchant(t, "Imposter")

		second, err := catalog.All(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Chicken House", second[0].Name())
	})
}
