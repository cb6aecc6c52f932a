// Package kernel contains shared value objects used by the domain model.
// These are foundational types with no business logic of their own: they
// provide identity and validation primitives that domain aggregates build on.
package kernel
