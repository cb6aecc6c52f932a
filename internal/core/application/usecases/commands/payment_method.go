package commands

import (
	"fmt"
	"strings"

	"foodorder/internal/pkg/errs"
)

// PaymentMethod is how the customer settles the order total.
type PaymentMethod int

const (
	// MethodUnknown represents an undefined payment method.
	// This value (0) helps catch uninitialized values.
	MethodUnknown PaymentMethod = iota

	// MethodCash defers collection to delivery; the processor is never called.
	MethodCash

	// MethodCard charges through the payment gateway before acceptance.
	MethodCard
)

// ParsePaymentMethod normalizes free-text input into a payment method.
// Input is trimmed and lowercased; "card" selects card payment and anything
// else, including the empty string, falls back to cash.
func ParsePaymentMethod(input string) PaymentMethod {
	if strings.ToLower(strings.TrimSpace(input)) == "card" {
		return MethodCard
	}
	return MethodCash
}

// String returns the human-readable name of the payment method.
func (p PaymentMethod) String() string {
	switch p {
	case MethodCash:
		return "Cash"
	case MethodCard:
		return "Card"
	default:
		return "Unknown"
	}
}

// Validate checks that the method is one of the recognized values.
func (p PaymentMethod) Validate() error {
	if p != MethodCash && p != MethodCard {
		return errs.NewValueIsInvalidErrorWithCause("payment method is invalid",
			fmt.Errorf("%d is not a valid payment method", p))
	}
	return nil
}
