package payment_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"foodorder/internal/adapters/out/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulator_Authorize(t *testing.T) {
	t.Run("approves by default and traces the attempt", func(t *testing.T) {
		var buf bytes.Buffer
		sim := payment.NewSimulator(0, false, &buf)

		approved, err := sim.Authorize(context.Background(), "3456", 34000)

		require.NoError(t, err)
		assert.True(t, approved)
		assert.Contains(t, buf.String(), "charging 34000 to card ****3456")
		assert.Contains(t, buf.String(), "payment approved")
	})

	t.Run("declines when decline injection is enabled", func(t *testing.T) {
		var buf bytes.Buffer
		sim := payment.NewSimulator(0, true, &buf)

		approved, err := sim.Authorize(context.Background(), "3456", 34000)

		require.NoError(t, err)
		assert.False(t, approved)
		assert.Contains(t, buf.String(), "payment declined")
		assert.NotContains(t, buf.String(), "payment approved")
	})

	t.Run("aborts when the context is cancelled during the delay", func(t *testing.T) {
		var buf bytes.Buffer
		sim := payment.NewSimulator(time.Minute, false, &buf)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		approved, err := sim.Authorize(ctx, "3456", 34000)

		require.Error(t, err)
		assert.False(t, approved)
	})
}
