package hiring

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrRequestIsNotConstructed is returned when a Request instance was not
// created through one of the constructors.
var ErrRequestIsNotConstructed = errors.New(
	"Request must be created via NewInvitation, NewApplication, or RestoreRequest constructor")

// Request is the hiring-request aggregate: a pending invitation or
// application between an organization and a user.
//
// Invariants:
//   - A user has at most one Pending request of a given direction per
//     organization (enforced by the hiring engine, backed by a partial
//     unique index).
//   - Only the receiving party resolves the request.
//   - Resolution is terminal.
type Request struct {
	id             kernel.UUID
	organizationID kernel.UUID
	userID         kernel.UUID
	direction      Direction
	status         Status
	message        string
	createdAt      time.Time

	isConstructed bool
}

// NewInvitation creates a Pending invitation from an organization to a user.
func NewInvitation(
	id kernel.UUID,
	organizationID kernel.UUID,
	userID kernel.UUID,
	message string,
	createdAt time.Time,
) (*Request, error) {
	return newRequest(id, organizationID, userID, Invitation, message, createdAt)
}

// NewApplication creates a Pending application from a user to an organization.
func NewApplication(
	id kernel.UUID,
	organizationID kernel.UUID,
	userID kernel.UUID,
	message string,
	createdAt time.Time,
) (*Request, error) {
	return newRequest(id, organizationID, userID, Application, message, createdAt)
}

func newRequest(
	id kernel.UUID,
	organizationID kernel.UUID,
	userID kernel.UUID,
	direction Direction,
	message string,
	createdAt time.Time,
) (*Request, error) {
	r := &Request{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrganizationID(organizationID),
		r.setUserID(userID),
		r.setDirection(direction),
		r.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	r.message = message
	return r, nil
}

// RestoreRequest reconstructs a Request from persistence.
func RestoreRequest(
	id kernel.UUID,
	organizationID kernel.UUID,
	userID kernel.UUID,
	direction Direction,
	status Status,
	message string,
	createdAt time.Time,
) (*Request, error) {
	r, err := newRequest(id, organizationID, userID, direction, message, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	r.status = status
	return r, nil
}

// Validate ensures the Request was created through a constructor.
func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}

	return nil
}

// IsEqual compares two requests by identifier.
func (r *Request) IsEqual(other *Request) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the request's unique identifier.
func (r *Request) ID() kernel.UUID {
	return r.id
}

// OrganizationID returns the organization side of the request.
func (r *Request) OrganizationID() kernel.UUID {
	return r.organizationID
}

// UserID returns the user side of the request.
func (r *Request) UserID() kernel.UUID {
	return r.userID
}

// Direction returns whether the request is an Invitation or an Application.
func (r *Request) Direction() Direction {
	return r.direction
}

// Status returns the current status of the request.
func (r *Request) Status() Status {
	return r.status
}

// Message returns the optional free-text message attached at creation.
func (r *Request) Message() string {
	return r.message
}

// CreatedAt returns when the request was created.
func (r *Request) CreatedAt() time.Time {
	return r.createdAt
}

// IsPending reports whether the request still awaits a decision.
func (r *Request) IsPending() bool {
	return r.status == Pending
}

// IsReceiver reports whether actorID is the party entitled to resolve the
// request: the invited user for an Invitation, the organization owner
// (passed as orgOwnerID) for an Application.
func (r *Request) IsReceiver(actorID kernel.UUID, orgOwnerID kernel.UUID) bool {
	switch r.direction {
	case Invitation:
		return r.userID.IsEqual(actorID)
	case Application:
		return orgOwnerID.IsEqual(actorID)
	default:
		return false
	}
}

// Resolve transitions the request to the given decision (Accepted or
// Rejected). Returns InvalidStateError if the request is not Pending.
// Receiver identity is verified by the calling use case.
func (r *Request) Resolve(decision Status) error {
	newStatus, err := r.status.Resolve(decision)
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

func (r *Request) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Request) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return err
	}
	r.organizationID = organizationID
	return nil
}

func (r *Request) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	r.userID = userID
	return nil
}

func (r *Request) setDirection(direction Direction) error {
	if err := direction.Validate(); err != nil {
		return err
	}
	r.direction = direction
	return nil
}

func (r *Request) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	r.createdAt = createdAt
	return nil
}
