package hiring

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a hiring request.
//
// State transitions:
//
//	Pending ──> Accepted   [terminal]
//	Pending ──> Rejected   [terminal]
//
// Once resolved, a request admits no further transitions.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Pending is the initial status: the request awaits the receiver's decision.
	Pending

	// Accepted means the receiver agreed; a Membership was created.
	Accepted

	// Rejected means the receiver declined, or the request was invalidated
	// because the user accepted a different one.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Pending:       "Pending",
		Accepted:      "Accepted",
		Rejected:      "Rejected",
	}
}

// Validate checks the Status is one of Pending, Accepted, Rejected.
func (s Status) Validate() error {
	switch s {
	case Pending, Accepted, Rejected:
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
	return s == Accepted || s == Rejected
}

// Resolve transitions Pending to the given decision. The decision must be
// Accepted or Rejected, and the current status must be Pending; any other
// combination is rejected with InvalidStateError.
func (s Status) Resolve(decision Status) (Status, error) {
	if decision != Accepted && decision != Rejected {
		return 0, errs.NewValueIsInvalidErrorWithCause("decision",
			fmt.Errorf("%s is not a valid resolution decision", decision))
	}

	if s != Pending {
		return 0, errs.NewInvalidStateError("hiringRequest", s.String(), "resolve")
	}

	return decision, nil
}
