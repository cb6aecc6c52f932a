package ports

import (
	"context"

	"foodorder/internal/core/domain/model/order"
)

// Deliverer runs the pickup-and-deliver cycle for a paid order.
//
// Deliver blocks until delivery completes (the simulation has no async
// handoff) and never mutates order status; the checkout orchestrator records
// the Delivered transition after it returns.
type Deliverer interface {
	Deliver(ctx context.Context, o *order.Order) error
}
