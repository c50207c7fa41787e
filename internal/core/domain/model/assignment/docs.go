// Package assignment contains the delivery-assignment aggregate: a single
// delivery job tying one order to one delivery organization and, eventually,
// one worker.
//
// The assignment owns the core state machine of the fulfillment workflow:
//
//	Requested ──(owner accepts)──> Assigned ──(worker picks up)──> InTransit ──(worker delivers)──> Completed
//	Requested ──(owner rejects)──> Cancelled
//
// Assigned deliberately covers both "accepted by the organization, awaiting
// a worker" and "worker attached": the two are distinguished by the
// nullability of the worker reference, never by a separate status. All logic
// in this package and its consumers branches on the (status, worker != nil)
// compound key.
package assignment
