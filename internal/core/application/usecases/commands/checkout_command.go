// Package commands contains business operations that drive the order
// lifecycle. The checkout command is the only writer of order status across
// the whole flow, keeping a single source of truth for state transitions.
package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/merchant"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
	// ErrCartIsEmpty is returned when checkout is attempted with no line
	// items. The session aborts empty carts before checkout, so hitting this
	// error indicates a caller bug.
	ErrCartIsEmpty = errs.NewValueIsRequiredError("cart")
	// ErrCardNumberIsRequired is returned when card payment is selected but
	// no card number was supplied.
	ErrCardNumberIsRequired = errs.NewValueIsRequiredError("cardNumber")
)

// CheckoutCommand represents one finalized checkout attempt: the customer,
// the chosen merchant, the cart, and how the customer wants to pay.
//
// Example:
//
//	cmd, err := NewCheckoutCommand("Dana", chickenHouse, cart, MethodCard, "1234-5678-9012-3456")
//	if err != nil {
//	    return fmt.Errorf("invalid checkout request: %w", err)
//	}
//
//	handler := NewCheckoutCommandHandler(gateway, deliverer)
//	placed, err := handler.Handle(ctx, cmd)
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	customerName string
	merchant     *merchant.Merchant
	cart         order.LineItems
	method       PaymentMethod
	cardNumber   string

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a checkout command.
//
// Validates that the merchant is constructed, the cart is non-empty with
// valid line items, the payment method is recognized, and a card number is
// present when paying by card. The customer name may be empty; the startup
// prompt does not validate it.
func NewCheckoutCommand(
	customerName string,
	m *merchant.Merchant,
	cart order.LineItems,
	method PaymentMethod,
	cardNumber string,
) (CheckoutCommand, error) {
	checkoutCommand := CheckoutCommand{
		customerName: customerName,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		checkoutCommand.setMerchant(m),
		checkoutCommand.setCart(cart),
		checkoutCommand.setPayment(method, cardNumber),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return checkoutCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCheckoutCommandIsNotConstructed if validation fails.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// CustomerName returns the customer's name.
func (c CheckoutCommand) CustomerName() string {
	return c.customerName
}

// Merchant returns the merchant the cart was built against.
func (c CheckoutCommand) Merchant() *merchant.Merchant {
	return c.merchant
}

// Cart returns the finalized line items.
func (c CheckoutCommand) Cart() order.LineItems {
	return c.cart
}

// Method returns the selected payment method.
func (c CheckoutCommand) Method() PaymentMethod {
	return c.method
}

// CardNumber returns the card number entered for card payment.
// Empty for cash payment.
func (c CheckoutCommand) CardNumber() string {
	return c.cardNumber
}

func (c *CheckoutCommand) setMerchant(m *merchant.Merchant) error {
	if err := m.Validate(); err != nil {
		return err
	}

	c.merchant = m
	return nil
}

func (c *CheckoutCommand) setCart(cart order.LineItems) error {
	if len(cart) == 0 {
		return ErrCartIsEmpty
	}
	if err := cart.Validate(); err != nil {
		return err
	}

	c.cart = cart
	return nil
}

func (c *CheckoutCommand) setPayment(method PaymentMethod, cardNumber string) error {
	if err := method.Validate(); err != nil {
		return err
	}
	if method == MethodCard && cardNumber == "" {
		return ErrCardNumberIsRequired
	}

	c.method = method
	c.cardNumber = cardNumber
	return nil
}
