package kernel

import (
	"fmt"

	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
)

// shortIDLength is the number of leading UUID characters shown to the user
// in confirmation lines and delivery traces.
const shortIDLength = 8

// ErrOrderIDIsNotConstructed indicates that an OrderID was not initialized
// through one of the constructor functions. It is returned when validating a
// zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID or OrderIDFromString",
)

// OrderID is a value object identifying a single checkout attempt. It wraps
// the github.com/google/uuid implementation to guarantee process-wide
// uniqueness while keeping the identifier opaque to the rest of the domain.
//
// The zero value of OrderID is invalid and must be constructed using NewOrderID
// or OrderIDFromString. OrderID is immutable and safe for concurrent use.
//
// Example usage:
//
//	id := kernel.NewOrderID()
//	fmt.Println(id.Short()) // e.g. "550e8400"
type OrderID struct {
	id uuid.UUID
}

// NewOrderID generates a new random OrderID (UUID version 4).
// This is the primary way to create identifiers for fresh orders.
func NewOrderID() OrderID {
	return OrderID{
		id: uuid.New(),
	}
}

// OrderIDFromString parses an OrderID from its full string representation.
// Returns an error if the string is not a valid UUID format.
//
// Example:
//
//	id, err := kernel.OrderIDFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    return fmt.Errorf("invalid order ID: %w", err)
//	}
func OrderIDFromString(s string) (OrderID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return OrderID{}, fmt.Errorf("invalid OrderID format: %w", err)
	}
	return OrderID{id: id}, nil
}

// String returns the full string representation of the identifier,
// "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx".
func (o OrderID) String() string {
	return o.id.String()
}

// Short returns the leading eight characters of the identifier. This is the
// form printed in user-facing output, where the full UUID would be noise.
func (o OrderID) Short() string {
	return o.id.String()[:shortIDLength]
}

// IsEqual compares two OrderIDs for equality.
func (o OrderID) IsEqual(other OrderID) bool {
	return o.id == other.id
}

// Validate checks that the OrderID was created through a constructor.
// A zero-value OrderID fails validation with ErrOrderIDIsNotConstructed.
func (o OrderID) Validate() error {
	if o.id == uuid.Nil {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}
