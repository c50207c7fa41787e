package assignment

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery assignment.
//
// State transitions:
//
//	Requested ──> Assigned ──> InTransit ──> Completed   [terminal]
//	Requested ──> Cancelled                              [terminal]
//
// Every transition not listed is rejected with InvalidStateError.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Requested is the initial status: the merchant has asked the
	// organization for delivery and awaits its decision.
	Requested

	// Assigned means the organization accepted the request. A worker may or
	// may not be attached yet; see the package documentation on the
	// (status, worker) compound key.
	Assigned

	// InTransit means the assigned worker picked the order up.
	InTransit

	// Completed means the order was delivered. Terminal; triggers payment
	// derivation.
	Completed

	// Cancelled means the organization rejected the request. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Requested:     "Requested",
		Assigned:      "Assigned",
		InTransit:     "InTransit",
		Completed:     "Completed",
		Cancelled:     "Cancelled",
	}
}

// Validate checks the Status is one of the five defined states.
func (s Status) Validate() error {
	switch s {
	case Requested, Assigned, InTransit, Completed, Cancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// IsActive reports whether the assignment still occupies its order. Every
// status except Cancelled counts as active: an order with a non-Cancelled
// assignment cannot receive another delivery request.
func (s Status) IsActive() bool {
	return s != Cancelled && s != StatusUnknown
}

// Review transitions Requested to the owner's decision, which must be
// Assigned (accept) or Cancelled (reject). Any other current status or
// decision is rejected.
func (s Status) Review(decision Status) (Status, error) {
	if decision != Assigned && decision != Cancelled {
		return 0, errs.NewValueIsInvalidErrorWithCause("decision",
			fmt.Errorf("%s is not a valid review decision", decision))
	}

	if s != Requested {
		return 0, errs.NewInvalidStateError("assignment", s.String(), "review")
	}

	return decision, nil
}

// ValidateAssignWorker checks the status allows attaching a worker.
// Only Assigned permits it; re-assignment while still Assigned is allowed,
// so an already-attached worker does not block the transition here.
func (s Status) ValidateAssignWorker() error {
	if s != Assigned {
		return errs.NewInvalidStateError("assignment", s.String(), "assign worker")
	}
	return nil
}

// Advance transitions the status along the worker-driven path:
// Assigned -> InTransit and InTransit -> Completed. Everything else,
// including skipping InTransit or re-completing, is rejected.
func (s Status) Advance(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}

	valid := (s == Assigned && next == InTransit) ||
		(s == InTransit && next == Completed)
	if !valid {
		return 0, errs.NewInvalidStateError("assignment", s.String(),
			fmt.Sprintf("advance to %s", next))
	}

	return next, nil
}

// ValidateCanHaveWorker validates consistency between status and worker
// attachment. A worker may be attached only in Assigned, InTransit, or
// Completed; InTransit and Completed additionally require one.
func (s Status) ValidateCanHaveWorker(worker bool) error {
	if worker && s != Assigned && s != InTransit && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have a worker", s.String()))
	}

	if !worker && (s == InTransit || s == Completed) {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have no worker", s.String()))
	}

	return nil
}
