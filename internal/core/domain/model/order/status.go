package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	New ──> Paid ──> Delivered
//	 │
//	 └────> Cancelled
//
// Cancelled and Delivered are terminal. Cancellation is reachable only from
// New (a declined card payment aborts the flow before acceptance), so a paid
// order always proceeds to delivery.
//
// Status is a value object that validates state transitions and provides
// string representations for display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status, set when an order is constructed from a cart.
	// Orders in this status are awaiting the payment outcome.
	New

	// Paid indicates payment has been settled: a card authorization succeeded,
	// or the customer chose cash (collected on delivery).
	Paid

	// Delivered indicates the merchant accepted the order and the courier
	// completed delivery. This is a final state.
	Delivered

	// Cancelled indicates a card payment was declined and the flow aborted.
	// This is a final state, reachable only from New.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		New:       "New",
		Paid:      "Paid",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:       "New",
		Paid:      "Paid",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: New, Paid, Delivered, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements the fmt.Stringer interface and is safe to call on any
// Status value, including invalid ones, for which it returns "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status is a final state with no further
// transitions (Delivered or Cancelled).
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Pay transitions the status to Paid.
//
// Valid transitions:
//   - New -> Paid (card authorization succeeded, or cash selected)
//
// Returns:
//   - (Paid, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Pay() (Status, error) {
	if s != New {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to pay", s.String()),
		)
	}

	return Paid, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - New -> Cancelled (card payment declined)
//
// A paid order cannot be cancelled: acceptance and delivery follow payment
// synchronously, so there is no window in which cancellation could apply.
//
// Returns:
//   - (Cancelled, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Cancel() (Status, error) {
	if s != New {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Paid -> Delivered (merchant accepted and courier completed delivery)
//
// Returns:
//   - (Delivered, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Deliver() (Status, error) {
	if s != Paid {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}

	return Delivered, nil
}
