// Package order models the storefront order as seen by the fulfillment core.
//
// Orders are owned by an external collaborator: the core reads order data
// (merchant, shipping address, drop-off location, lines) to embed in delivery
// assignments, and writes back exactly one field, the externally-visible
// fulfillment status, as a trailing effect of assignment transitions. No
// other component of the core may touch the order.
package order
