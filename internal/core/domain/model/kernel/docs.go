// Package kernel provides core domain primitives shared across the
// fulfillment domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - Address: an immutable postal address, denormalized into assignments
//   - Location: a point on the city grid, used for distance estimation
//
// These primitives enforce domain invariants at construction time, ensuring
// that domain objects are always in a valid state. They are immutable and
// safe for concurrent use.
package kernel
