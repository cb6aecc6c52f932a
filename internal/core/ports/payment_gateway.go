// Package ports defines the outbound interfaces the application core depends
// on. Adapters implement them; tests substitute fakes.
package ports

import "context"

// PaymentGateway authorizes a charge against a customer's card.
//
// Authorize receives the masked card suffix (never the full number) and the
// order total. It returns whether the charge was approved; a false result is
// a domain outcome (declined payment), not an error. The error return covers
// infrastructure failures such as context cancellation.
type PaymentGateway interface {
	Authorize(ctx context.Context, maskedCard string, amount int) (bool, error)
}
