package merchant

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/courier"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when attempting to create a merchant
	// without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCourierIsRequired is returned when attempting to create a merchant
	// without a delivery agent.
	ErrCourierIsRequired = errs.NewValueIsRequiredError("courier")
	// ErrDelivererIsRequired is returned when AcceptOrder is invoked without
	// a deliverer.
	ErrDelivererIsRequired = errs.NewValueIsRequiredError("deliverer")
	// ErrMerchantIsNotConstructed is returned when using an improperly
	// initialized Merchant.
	ErrMerchantIsNotConstructed = errors.New("Merchant must be created via NewMerchant constructor")
	// ErrOrderIsNotPaid is returned when AcceptOrder is invoked on an order
	// that is not in the Paid status. The checkout orchestrator always pays
	// before acceptance, so hitting this error indicates a programming error
	// in the caller, not a user-facing domain outcome.
	ErrOrderIsNotPaid = errors.New("order must be in Paid status before acceptance")
)

// Deliverer dispatches a paid order for its pickup-and-deliver cycle.
// The simulated dispatch adapter satisfies this interface; tests substitute
// fast fakes.
type Deliverer interface {
	Deliver(ctx context.Context, o *order.Order) error
}

// Merchant represents a restaurant with a menu and an associated courier.
// Merchants are constructed once at startup and live for the process
// duration; they hold no per-order state.
//
// Business rules:
//   - A merchant must have a non-empty name, a valid menu, and a courier
//   - AcceptOrder requires the order to be in the Paid status and fails fast
//     otherwise
//   - The merchant never mutates order status; the checkout orchestrator is
//     the sole writer of lifecycle state
type Merchant struct {
	// name is the merchant's identity
	name string
	// menu is the merchant's orderable items with unit prices
	menu Menu
	// agent is the delivery agent used for fulfillment (shared, not owned)
	agent *courier.DeliveryAgent
	// guard ensures the merchant was properly constructed
	guard guard.ConstructorGuard
}

// NewMerchant creates a Merchant with the given name, menu, and delivery
// agent. All three are required and validated.
func NewMerchant(name string, menu Menu, agent *courier.DeliveryAgent) (*Merchant, error) {
	if name == "" {
		return nil, ErrNameIsRequired
	}
	if err := menu.Validate(); err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, ErrCourierIsRequired
	}
	if err := agent.Validate(); err != nil {
		return nil, err
	}

	return &Merchant{
		name:  name,
		menu:  menu,
		agent: agent,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Name returns the merchant's name.
func (m *Merchant) Name() string {
	return m.name
}

// Menu returns the merchant's menu.
func (m *Merchant) Menu() Menu {
	return m.menu
}

// Courier returns the delivery agent the merchant uses for fulfillment.
func (m *Merchant) Courier() *courier.DeliveryAgent {
	return m.agent
}

// AcceptOrder takes a paid order into preparation and hands it to the
// deliverer for the pickup-and-deliver cycle.
//
// Preconditions (fail fast on violation):
//   - The order must be valid and in the Paid status
//   - A deliverer must be supplied
//
// AcceptOrder returns only after the deliverer finished, since acceptance
// synchronously triggers delivery in this model. It does not touch order
// status: the caller records the Delivered transition after AcceptOrder
// returns.
func (m *Merchant) AcceptOrder(ctx context.Context, o *order.Order, d Deliverer) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}
	if o.Status() != order.Paid {
		return ErrOrderIsNotPaid
	}
	if d == nil {
		return ErrDelivererIsRequired
	}

	return d.Deliver(ctx, o)
}

// IsEqual compares two merchants by name.
func (m *Merchant) IsEqual(other *Merchant) bool {
	return other != nil && m.name == other.name
}

// Validate ensures the merchant was created through NewMerchant.
func (m *Merchant) Validate() error {
	if m == nil {
		return ErrMerchantIsNotConstructed
	}
	return m.guard.Validate(ErrMerchantIsNotConstructed)
}
