// Package order provides domain entities and business logic for order
// management. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root managing identity, cart, total, and lifecycle
//   - Status: A state machine enforcing valid order status transitions
//   - LineItem / LineItems: Value objects for the finalized cart
//
// Key business rules:
//   - Orders must have a valid identifier, a merchant name, and a non-empty cart
//   - The total is computed once at construction and never recomputed
//   - Status follows New -> Paid -> Delivered, with New -> Cancelled as the
//     only escape (a declined card payment)
//   - Delivered and Cancelled are terminal
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are
// enforced.
package order
