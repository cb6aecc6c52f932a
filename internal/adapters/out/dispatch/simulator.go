// Package dispatch provides the simulated fulfillment cycle for a paid
// order: merchant-side cooking followed by the courier's pickup and
// delivery. No real dispatch system is called; delays and traces stand in
// for the external side effects. Order status is never touched here, that
// responsibility stays with the checkout orchestrator.
package dispatch

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"foodorder/internal/core/domain/model/courier"
	"foodorder/internal/core/domain/model/order"
)

// Simulator implements ports.Deliverer with configurable cooking and
// delivery delays and a delivery agent identity for the traces.
type Simulator struct {
	agent         *courier.DeliveryAgent
	cookingDelay  time.Duration
	deliveryDelay time.Duration
	out           io.Writer
}

// NewSimulator creates a dispatch simulator for the given delivery agent.
// out receives the progress traces (os.Stdout when nil).
func NewSimulator(
	agent *courier.DeliveryAgent,
	cookingDelay, deliveryDelay time.Duration,
	out io.Writer,
) (*Simulator, error) {
	if err := agent.Validate(); err != nil {
		return nil, err
	}
	if out == nil {
		out = os.Stdout
	}

	return &Simulator{
		agent:         agent,
		cookingDelay:  cookingDelay,
		deliveryDelay: deliveryDelay,
		out:           out,
	}, nil
}

// Agent returns the delivery agent this simulator dispatches.
func (s *Simulator) Agent() *courier.DeliveryAgent {
	return s.agent
}

// Deliver runs the acceptance, cooking, pickup, and delivery sequence for
// the order, tracing each stage. It blocks for the configured delays and
// returns early only on context cancellation.
func (s *Simulator) Deliver(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	fmt.Fprintf(s.out, "[Merchant %q] order %s accepted, cooking started\n", o.MerchantName(), o.ID().Short())
	if err := wait(ctx, s.cookingDelay); err != nil {
		return err
	}

	fmt.Fprintf(s.out, "[Courier %s] order %s picked up, heading to the customer\n", s.agent.Name(), o.ID().Short())
	if err := wait(ctx, s.deliveryDelay); err != nil {
		return err
	}

	fmt.Fprintf(s.out, "[Courier %s] order %s delivered\n", s.agent.Name(), o.ID().Short())
	return nil
}

// wait blocks for the duration or until the context is cancelled.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
