// Package organization contains the delivery-organization aggregate and the
// membership relation that makes a user an active worker of exactly one
// organization at a time.
//
// An organization has exactly one owner, the user who created it. The owner
// is implicitly a member and never holds a Membership row. Organizations are
// never hard-deleted while assignments reference them; they are soft-disabled
// instead.
//
// Membership rows are created only by the hiring negotiation workflow when a
// request resolves to Accepted, and the single-active-membership invariant is
// enforced both there and by a unique database index on the user.
package organization
