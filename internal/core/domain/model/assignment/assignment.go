package assignment

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrAssignmentIsNotConstructed is returned when an Assignment instance was
// not created through NewAssignment or RestoreAssignment.
var ErrAssignmentIsNotConstructed = errors.New(
	"Assignment must be created via NewAssignment or RestoreAssignment constructor")

// Assignment is the aggregate root of the delivery fulfillment workflow.
// It ties one order to one delivery organization and, once the organization
// picks a worker, to that worker.
//
// Invariants:
//   - The worker reference is non-nil only in Assigned, InTransit, or
//     Completed; InTransit and Completed require it.
//   - The delivery address is a denormalized copy taken from the order at
//     request time and never changes afterwards.
//   - The fee is set by the merchant at request time and is immutable.
//   - At most one active (non-Cancelled) assignment exists per order,
//     enforced by the requesting use case and a partial unique index.
type Assignment struct {
	id             kernel.UUID
	orderID        kernel.UUID
	merchantID     kernel.UUID
	organizationID kernel.UUID
	workerID       *kernel.UUID
	address        kernel.Address
	dropoff        kernel.Location
	fee            decimal.Decimal
	instructions   string
	status         Status
	assignedAt     *time.Time

	isConstructed bool
}

// NewAssignment creates an assignment in Requested status from a merchant's
// delivery request. The address and drop-off location are the denormalized
// copies taken from the order; the fee must be positive.
func NewAssignment(
	id kernel.UUID,
	orderID kernel.UUID,
	merchantID kernel.UUID,
	organizationID kernel.UUID,
	address kernel.Address,
	dropoff kernel.Location,
	fee decimal.Decimal,
	instructions string,
) (*Assignment, error) {
	a := &Assignment{
		status:        Requested,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setMerchantID(merchantID),
		a.setOrganizationID(organizationID),
		a.setAddress(address),
		a.setDropoff(dropoff),
		a.setFee(fee),
	); err != nil {
		return nil, err
	}

	a.instructions = instructions
	return a, nil
}

// RestoreAssignment reconstructs an Assignment from persistence, validating
// the (status, worker) compound invariant.
func RestoreAssignment(
	id kernel.UUID,
	orderID kernel.UUID,
	merchantID kernel.UUID,
	organizationID kernel.UUID,
	address kernel.Address,
	dropoff kernel.Location,
	fee decimal.Decimal,
	instructions string,
	status Status,
	workerID *kernel.UUID,
	assignedAt *time.Time,
) (*Assignment, error) {
	a, err := NewAssignment(id, orderID, merchantID, organizationID, address, dropoff, fee, instructions)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if err = status.ValidateCanHaveWorker(workerID != nil); err != nil {
		return nil, err
	}

	if workerID != nil {
		if err = workerID.Validate(); err != nil {
			return nil, err
		}
	}

	a.status = status
	a.workerID = workerID
	a.assignedAt = assignedAt
	return a, nil
}

// Validate ensures the Assignment was created through a constructor.
func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}

	return nil
}

// IsEqual compares two assignments by identifier.
func (a *Assignment) IsEqual(other *Assignment) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the assignment's unique identifier.
func (a *Assignment) ID() kernel.UUID {
	return a.id
}

// OrderID returns the order the assignment delivers.
func (a *Assignment) OrderID() kernel.UUID {
	return a.orderID
}

// MerchantID returns the merchant who requested the delivery.
func (a *Assignment) MerchantID() kernel.UUID {
	return a.merchantID
}

// OrganizationID returns the delivery organization handling the job.
func (a *Assignment) OrganizationID() kernel.UUID {
	return a.organizationID
}

// Worker returns the assigned worker's ID, or nil if no worker is attached.
func (a *Assignment) Worker() *kernel.UUID {
	return a.workerID
}

// Address returns the denormalized delivery address.
func (a *Assignment) Address() kernel.Address {
	return a.address
}

// Dropoff returns the denormalized drop-off location on the city grid.
func (a *Assignment) Dropoff() kernel.Location {
	return a.dropoff
}

// Fee returns the merchant-set delivery fee.
func (a *Assignment) Fee() decimal.Decimal {
	return a.fee
}

// Instructions returns the merchant's free-text delivery instructions.
func (a *Assignment) Instructions() string {
	return a.instructions
}

// Status returns the current status of the assignment.
func (a *Assignment) Status() Status {
	return a.status
}

// AssignedAt returns when a worker was attached, or nil if none ever was.
func (a *Assignment) AssignedAt() *time.Time {
	return a.assignedAt
}

// IsActive reports whether the assignment occupies its order, i.e. its
// status is anything but Cancelled.
func (a *Assignment) IsActive() bool {
	return a.status.IsActive()
}

// IsUnassigned reports whether the assignment sits in the organization's
// unassigned queue: accepted but with no worker attached yet.
func (a *Assignment) IsUnassigned() bool {
	return a.status == Assigned && a.workerID == nil
}

// Review applies the organization owner's decision to a Requested
// assignment. The decision must be Assigned (accept) or Cancelled (reject);
// accepting does not yet require a worker. Ownership of the organization is
// verified by the calling use case.
func (a *Assignment) Review(decision Status) error {
	newStatus, err := a.status.Review(decision)
	if err != nil {
		return err
	}

	a.status = newStatus
	return nil
}

// AssignWorker attaches a worker to an accepted assignment and records the
// time. Valid only while the status is Assigned; calling it again with a
// different worker before the job goes InTransit simply overwrites the
// assignee. The worker's membership in the organization is verified by the
// calling use case.
func (a *Assignment) AssignWorker(workerID kernel.UUID, at time.Time) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	if err := a.status.ValidateAssignWorker(); err != nil {
		return err
	}

	a.workerID = &workerID
	a.assignedAt = &at
	return nil
}

// Advance moves the assignment along the worker-driven path
// (Assigned -> InTransit -> Completed). Only the assigned worker may act;
// any other actor gets ForbiddenError, and any transition outside the legal
// table gets InvalidStateError.
func (a *Assignment) Advance(next Status, actorID kernel.UUID) error {
	if a.workerID == nil || !a.workerID.IsEqual(actorID) {
		return errs.NewForbiddenError("assignment", "actor is not the assigned worker")
	}

	newStatus, err := a.status.Advance(next)
	if err != nil {
		return err
	}

	a.status = newStatus
	return nil
}

func (a *Assignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Assignment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	a.orderID = orderID
	return nil
}

func (a *Assignment) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}
	a.merchantID = merchantID
	return nil
}

func (a *Assignment) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return err
	}
	a.organizationID = organizationID
	return nil
}

func (a *Assignment) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	a.address = address
	return nil
}

func (a *Assignment) setDropoff(dropoff kernel.Location) error {
	if err := dropoff.Validate(); err != nil {
		return err
	}
	a.dropoff = dropoff
	return nil
}

func (a *Assignment) setFee(fee decimal.Decimal) error {
	if !fee.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("fee",
			errors.New("fee must be greater than 0"))
	}
	a.fee = fee
	return nil
}
