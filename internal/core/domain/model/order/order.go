package order

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory method. This ensures all orders
	// are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrMerchantNameIsRequired is returned when an order is created without
	// a merchant name.
	ErrMerchantNameIsRequired = errs.NewValueIsRequiredError("merchantName")

	// ErrLineItemsAreRequired is returned when an order is created from an
	// empty cart. Abandoned flows must never construct an Order.
	ErrLineItemsAreRequired = errs.NewValueIsRequiredError("lineItems")
)

// Order represents one customer's checkout attempt, from cart finalization
// through delivery or cancellation. It is the aggregate root that manages the
// order lifecycle.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must name the merchant it was placed with
//   - Must contain at least one valid line item
//   - totalAmount equals the sum of line item subtotals at construction time
//     and is never recomputed; line items are copied in and never mutated
//   - Status transitions follow the rules defined by Status
//   - Can only be created through the NewOrder constructor
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods. The checkout handler is the sole
// caller of the transition methods, keeping one writer of lifecycle state.
type Order struct {
	// id is the unique identifier for the order
	id kernel.OrderID

	// customerName is the name given at the startup prompt (may be empty,
	// the prompt is unvalidated)
	customerName string

	// merchantName is a denormalized copy of the chosen merchant's name
	merchantName string

	// lineItems is the finalized cart, immutable after construction
	lineItems LineItems

	// totalAmount is the sum of line item subtotals, computed once
	totalAmount int

	// status is the current state in the order lifecycle
	status Status

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order in the New status. This is the only way to
// create a valid Order, ensuring all business invariants hold.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid)
//   - customerName: Customer identity from the startup prompt (may be empty)
//   - merchantName: Name of the merchant the cart was built against (required)
//   - items: The finalized cart (must be non-empty, all items valid)
//
// The line items are copied so later mutation of the caller's slice cannot
// affect the order, and totalAmount is computed once from the copy.
//
// Example:
//
//	items := order.LineItems{item}
//	o, err := order.NewOrder(kernel.NewOrderID(), "Dana", "Chicken House", items)
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(id kernel.OrderID, customerName, merchantName string, items LineItems) (*Order, error) {
	o := &Order{
		customerName:  customerName,
		status:        New,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setMerchantName(merchantName),
		o.setLineItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder. This prevents bypassing validation by directly instantiating
// the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// CustomerName returns the name the customer gave at startup.
func (o *Order) CustomerName() string {
	return o.customerName
}

// MerchantName returns the name of the merchant the order was placed with.
func (o *Order) MerchantName() string {
	return o.merchantName
}

// LineItems returns a copy of the order's line items. The copy keeps the
// aggregate's cart immutable from the outside.
func (o *Order) LineItems() LineItems {
	items := make(LineItems, len(o.lineItems))
	copy(items, o.lineItems)
	return items
}

// TotalAmount returns the order total computed at construction time.
func (o *Order) TotalAmount() int {
	return o.totalAmount
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Pay marks the order as paid.
//
// This transition is valid only from the New status. It is applied when a
// card authorization succeeds or when the customer chooses cash (collected
// on delivery, outside this simulation).
func (o *Order) Pay() error {
	newStatus, err := o.status.Pay()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel marks the order as cancelled after a declined card payment.
//
// This transition is valid only from the New status; once paid, an order
// proceeds synchronously to delivery and can no longer be cancelled.
// Cancelled is a final state.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Deliver marks the order as delivered.
//
// This transition is valid only from the Paid status and is applied after the
// merchant's acceptance completed, which implies the courier finished
// delivery. Delivered is a final state.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setMerchantName validates and sets the merchant name.
// This is a private method used only during construction.
func (o *Order) setMerchantName(merchantName string) error {
	if merchantName == "" {
		return ErrMerchantNameIsRequired
	}
	o.merchantName = merchantName
	return nil
}

// setLineItems validates, copies, and sets the cart, then computes the total.
// This is a private method used only during construction.
func (o *Order) setLineItems(items LineItems) error {
	if len(items) == 0 {
		return ErrLineItemsAreRequired
	}
	if err := items.Validate(); err != nil {
		return err
	}

	o.lineItems = make(LineItems, len(items))
	copy(o.lineItems, items)
	o.totalAmount = o.lineItems.Total()
	return nil
}
