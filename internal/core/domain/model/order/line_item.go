package order

import (
	"errors"
	"fmt"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	// ErrItemNameIsRequired is returned when a line item is created without
	// an item name.
	ErrItemNameIsRequired = errs.NewValueIsRequiredError("itemName")
	// ErrLineItemIsNotConstructed is returned when using an improperly
	// initialized LineItem.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")
)

// LineItem is a value object describing one entry of a cart: a menu item name,
// how many were ordered, and the unit price captured at the moment the cart
// was built. Line items are immutable; a changed cart produces a new Order.
type LineItem struct {
	// name is the menu item name
	name string
	// quantity is the number of units ordered (at least 1)
	quantity int
	// unitPrice is the per-unit price captured from the menu (non-negative)
	unitPrice int
	// guard ensures the line item was properly constructed
	guard guard.ConstructorGuard
}

// NewLineItem creates a validated LineItem.
//
// Parameters:
//   - name: Menu item name (must be non-empty)
//   - quantity: Units ordered (must be at least 1)
//   - unitPrice: Per-unit price (must be non-negative)
//
// Returns the line item, or a validation error if any parameter is invalid.
func NewLineItem(name string, quantity, unitPrice int) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setName(name),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Name returns the menu item name.
func (i LineItem) Name() string {
	return i.name
}

// Quantity returns the number of units ordered.
func (i LineItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the per-unit price.
func (i LineItem) UnitPrice() int {
	return i.unitPrice
}

// Subtotal returns quantity times unit price.
func (i LineItem) Subtotal() int {
	return i.quantity * i.unitPrice
}

// Validate ensures the line item was created through NewLineItem.
func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

func (i *LineItem) setName(name string) error {
	if name == "" {
		return ErrItemNameIsRequired
	}
	i.name = name
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not at least 1", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *LineItem) setUnitPrice(unitPrice int) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice is invalid",
			fmt.Errorf("%d is negative", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}

// LineItems is an ordered collection of line items forming one cart.
type LineItems []LineItem

// Total returns the sum of all subtotals.
func (items LineItems) Total() int {
	total := 0
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}

// Validate checks every line item in the collection.
func (items LineItems) Validate() error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}
