// Package errs provides the standardized error taxonomy for the fulfillment
// core. It implements a consistent pattern for error creation, formatting,
// and unwrapping that is used throughout the application.
//
// Four kinds classify every user-actionable failure of the core:
//   - ObjectNotFoundError: a referenced entity is absent
//   - ConflictError: a uniqueness or cardinality invariant would be violated
//   - InvalidStateError: the operation is not legal from the current state
//   - ForbiddenError: the actor lacks the required relationship to the entity
//
// Two further kinds support construction-time validation:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed validation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies it
//
// None of these are retried by the core itself; they are surfaced to the
// caller as typed, user-actionable failures.
package errs
