package courier_test

import (
	"testing"

	"foodorder/internal/core/domain/model/courier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeliveryAgent(t *testing.T) {
	t.Run("creates_agent_with_name", func(t *testing.T) {
		agent, err := courier.NewDeliveryAgent("Max")

		require.NoError(t, err)
		require.NoError(t, agent.Validate())
		assert.Equal(t, "Max", agent.Name())
	})

	t.Run("rejects_empty_name", func(t *testing.T) {
		_, err := courier.NewDeliveryAgent("")

		require.Error(t, err)
		assert.Equal(t, courier.ErrNameIsRequired, err)
	})
}

func TestDeliveryAgent_IsEqual(t *testing.T) {
	t.Run("agents_with_same_name_are_equal", func(t *testing.T) {
		a, err := courier.NewDeliveryAgent("Max")
		require.NoError(t, err)
		b, err := courier.NewDeliveryAgent("Max")
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
	})

	t.Run("agents_with_different_names_are_not_equal", func(t *testing.T) {
		a, err := courier.NewDeliveryAgent("Max")
		require.NoError(t, err)
		b, err := courier.NewDeliveryAgent("Lena")
		require.NoError(t, err)

		assert.False(t, a.IsEqual(b))
	})

	t.Run("nil_is_never_equal", func(t *testing.T) {
		a, err := courier.NewDeliveryAgent("Max")
		require.NoError(t, err)

		assert.False(t, a.IsEqual(nil))
	})
}

func TestDeliveryAgent_Validate(t *testing.T) {
	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var agent courier.DeliveryAgent

		err := agent.Validate()

		require.Error(t, err)
		assert.Equal(t, courier.ErrDeliveryAgentIsNotConstructed, err)
	})

	t.Run("nil_agent_fails_validation", func(t *testing.T) {
		var agent *courier.DeliveryAgent

		err := agent.Validate()

		require.Error(t, err)
	})
}
