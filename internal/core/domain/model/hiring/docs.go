// Package hiring contains the hiring-request aggregate: the pending offer or
// application that, once accepted, creates a Membership.
//
// A request flows Pending -> Accepted | Rejected and is terminal once
// resolved. Two symmetric directions exist: an Invitation travels from an
// organization to a user, an Application from a user to an organization.
// Only the receiving party may resolve a request: the invited user for an
// Invitation, the organization owner for an Application.
package hiring
