// Package guard provides a defensive construction pattern for domain objects.
// Embedding a ConstructorGuard in a struct makes it possible to detect whether
// the struct was created through its designated constructor or left as a zero
// value, so validation can fail fast on improperly built objects.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is passed
// as the validation error. This ensures validation always fails with a
// meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and entities are only created through
// their designated constructor functions. The guard keeps an internal flag that
// is only set when NewConstructorGuard is called, so any zero-value struct
// embedding it fails validation.
//
// Example usage:
//
//	var ErrCartNotConstructed = errors.New("Cart must be created via NewCart")
//
//	type Cart struct {
//	    items []Item
//	    guard guard.ConstructorGuard
//	}
//
//	func NewCart(items []Item) (Cart, error) {
//	    return Cart{items: items, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c Cart) Validate() error {
//	    return c.guard.Validate(ErrCartNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it inside the constructor of the guarded object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was properly constructed.
//
// Returns:
//   - nil if the object was constructed through its constructor
//   - validationError if it was not
//   - ErrDefaultConstructorGuard if validationError is nil and the object was
//     not constructed
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
