// Package payment provides a simulated card processor. There is no real
// network call: the adapter waits a configured delay and returns a
// configured outcome, emitting the progress traces a real processor
// integration would log.
package payment

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// Simulator implements ports.PaymentGateway with a fixed processing delay
// and a deterministic outcome.
//
// The reference behavior approves unconditionally; decline is injectable for
// tests and demos. The simulator keeps no state across calls.
type Simulator struct {
	delay   time.Duration
	decline bool
	out     io.Writer
}

// NewSimulator creates a payment simulator.
//
// delay is the simulated processing pause, decline forces every authorization
// to fail, and out receives the progress traces (os.Stdout when nil).
func NewSimulator(delay time.Duration, decline bool, out io.Writer) *Simulator {
	if out == nil {
		out = os.Stdout
	}
	return &Simulator{
		delay:   delay,
		decline: decline,
		out:     out,
	}
}

// Authorize simulates a charge attempt against the card.
// It traces the attempt, waits the configured delay, then returns the
// configured outcome. The only error condition is context cancellation
// during the delay.
func (s *Simulator) Authorize(ctx context.Context, maskedCard string, amount int) (bool, error) {
	fmt.Fprintf(s.out, "[PG] charging %d to card ****%s\n", amount, maskedCard)

	if err := wait(ctx, s.delay); err != nil {
		return false, err
	}

	if s.decline {
		fmt.Fprintln(s.out, "[PG] payment declined")
		return false, nil
	}

	fmt.Fprintln(s.out, "[PG] payment approved")
	return true, nil
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
