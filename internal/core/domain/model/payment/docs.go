// Package payment contains the derived, append-only payment record created
// exactly once per completed delivery assignment.
//
// A payment is never mutated after creation; the only later change, the
// Pending -> Paid status flip, is owned by an external settlement
// collaborator and happens outside the fulfillment core.
package payment
