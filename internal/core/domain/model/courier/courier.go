// Package courier provides the DeliveryAgent entity. A delivery agent carries
// identity only: the simulated pickup-and-deliver behavior lives in the
// dispatch adapter, and order status transitions stay with the checkout
// orchestrator so there is a single writer of lifecycle state.
package courier

import (
	"errors"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when attempting to create a delivery agent
	// without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrDeliveryAgentIsNotConstructed is returned when using an improperly
	// initialized DeliveryAgent.
	ErrDeliveryAgentIsNotConstructed = errors.New(
		"DeliveryAgent must be created via NewDeliveryAgent constructor",
	)
)

// DeliveryAgent represents a courier fulfilling one order at a time.
// It is constructed once at startup and shared between merchants; it holds no
// per-order state.
type DeliveryAgent struct {
	// name is the human-readable identity of the agent
	name string
	// guard ensures the agent was properly constructed
	guard guard.ConstructorGuard
}

// NewDeliveryAgent creates a DeliveryAgent with the given name.
// The name must be non-empty; it is the agent's only identity.
func NewDeliveryAgent(name string) (*DeliveryAgent, error) {
	if name == "" {
		return nil, ErrNameIsRequired
	}

	return &DeliveryAgent{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Name returns the agent's human-readable name.
func (a *DeliveryAgent) Name() string {
	return a.name
}

// IsEqual compares two delivery agents by name.
func (a *DeliveryAgent) IsEqual(other *DeliveryAgent) bool {
	return other != nil && a.name == other.name
}

// Validate ensures the agent was created through NewDeliveryAgent.
func (a *DeliveryAgent) Validate() error {
	if a == nil {
		return ErrDeliveryAgentIsNotConstructed
	}
	return a.guard.Validate(ErrDeliveryAgentIsNotConstructed)
}
