package merchant_test

import (
	"context"
	"testing"

	"foodorder/internal/core/domain/model/courier"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/merchant"
	"foodorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDeliverer struct{ mock.Mock }

func (m *MockDeliverer) Deliver(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func testAgent(t *testing.T) *courier.DeliveryAgent {
	t.Helper()
	agent, err := courier.NewDeliveryAgent("Max")
	require.NoError(t, err)
	return agent
}

func testMenu(t *testing.T) merchant.Menu {
	t.Helper()
	menu, err := merchant.NewMenu([]merchant.MenuItem{
		mustMenuItem(t, "Fried", 17000),
		mustMenuItem(t, "Seasoned", 18000),
	})
	require.NoError(t, err)
	return menu
}

func testOrder(t *testing.T) *order.Order {
	t.Helper()
	item, err := order.NewLineItem("Fried", 2, 17000)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewOrderID(), "Dana", "Chicken House", order.LineItems{item})
	require.NoError(t, err)
	return o
}

func TestNewMerchant(t *testing.T) {
	t.Run("should create valid merchant", func(t *testing.T) {
		agent := testAgent(t)

		m, err := merchant.NewMerchant("Chicken House", testMenu(t), agent)

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, "Chicken House", m.Name())
		assert.Equal(t, 2, m.Menu().Len())
		assert.True(t, m.Courier().IsEqual(agent))
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := merchant.NewMerchant("", testMenu(t), testAgent(t))

		require.Error(t, err)
		assert.Equal(t, merchant.ErrNameIsRequired, err)
	})

	t.Run("should fail with unconstructed menu", func(t *testing.T) {
		var menu merchant.Menu

		_, err := merchant.NewMerchant("Chicken House", menu, testAgent(t))

		require.Error(t, err)
		assert.Equal(t, merchant.ErrMenuIsNotConstructed, err)
	})

	t.Run("should fail with nil courier", func(t *testing.T) {
		_, err := merchant.NewMerchant("Chicken House", testMenu(t), nil)

		require.Error(t, err)
		assert.Equal(t, merchant.ErrCourierIsRequired, err)
	})
}

func TestMerchant_AcceptOrder(t *testing.T) {
	t.Run("should deliver a paid order", func(t *testing.T) {
		ctx := context.Background()
		m, err := merchant.NewMerchant("Chicken House", testMenu(t), testAgent(t))
		require.NoError(t, err)

		o := testOrder(t)
		require.NoError(t, o.Pay())

		deliverer := new(MockDeliverer)
		deliverer.On("Deliver", ctx, o).Return(nil).Once()

		require.NoError(t, m.AcceptOrder(ctx, o, deliverer))
		deliverer.AssertExpectations(t)
	})

	t.Run("should fail fast on unpaid order without delivering", func(t *testing.T) {
		ctx := context.Background()
		m, err := merchant.NewMerchant("Chicken House", testMenu(t), testAgent(t))
		require.NoError(t, err)

		o := testOrder(t) // still New

		deliverer := new(MockDeliverer)

		err = m.AcceptOrder(ctx, o, deliverer)

		require.Error(t, err)
		assert.Equal(t, merchant.ErrOrderIsNotPaid, err)
		deliverer.AssertNotCalled(t, "Deliver", mock.Anything, mock.Anything)
	})

	t.Run("should reject cancelled order", func(t *testing.T) {
		ctx := context.Background()
		m, err := merchant.NewMerchant("Chicken House", testMenu(t), testAgent(t))
		require.NoError(t, err)

		o := testOrder(t)
		require.NoError(t, o.Cancel())

		err = m.AcceptOrder(ctx, o, new(MockDeliverer))

		require.Error(t, err)
		assert.Equal(t, merchant.ErrOrderIsNotPaid, err)
	})

	t.Run("should reject nil deliverer", func(t *testing.T) {
		ctx := context.Background()
		m, err := merchant.NewMerchant("Chicken House", testMenu(t), testAgent(t))
		require.NoError(t, err)

		o := testOrder(t)
		require.NoError(t, o.Pay())

		err = m.AcceptOrder(ctx, o, nil)

		require.Error(t, err)
		assert.Equal(t, merchant.ErrDelivererIsRequired, err)
	})

	t.Run("should reject unconstructed order", func(t *testing.T) {
		ctx := context.Background()
		m, err := merchant.NewMerchant("Chicken House", testMenu(t), testAgent(t))
		require.NoError(t, err)

		var o order.Order

		require.Error(t, m.AcceptOrder(ctx, &o, new(MockDeliverer)))
	})

	t.Run("zero_value_merchant_fails_validation", func(t *testing.T) {
		var m merchant.Merchant

		o := testOrder(t)
		require.NoError(t, o.Pay())

		err := m.AcceptOrder(context.Background(), o, new(MockDeliverer))

		require.Error(t, err)
		assert.Equal(t, merchant.ErrMerchantIsNotConstructed, err)
	})
}

func TestMerchant_IsEqual(t *testing.T) {
	t.Run("merchants are compared by name", func(t *testing.T) {
		a, err := merchant.NewMerchant("Chicken House", testMenu(t), testAgent(t))
		require.NoError(t, err)
		b, err := merchant.NewMerchant("Chicken House", testMenu(t), testAgent(t))
		require.NoError(t, err)
		c, err := merchant.NewMerchant("Golden Chicken", testMenu(t), testAgent(t))
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
		assert.False(t, a.IsEqual(nil))
	})
}
