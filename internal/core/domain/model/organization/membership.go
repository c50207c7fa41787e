package organization

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrMembershipIsNotConstructed is returned when a Membership instance was
// not created through NewMembership or RestoreMembership.
var ErrMembershipIsNotConstructed = errors.New(
	"Membership must be created via NewMembership or RestoreMembership constructor")

// Membership is the relation making a user an active worker of an
// organization. A user holds at most one membership across all organizations
// at a time; the hiring engine enforces this when creating the row, and a
// unique database index on the user backs it up under concurrency.
//
// Memberships exist only while active: removal deletes the row.
type Membership struct {
	id             kernel.UUID
	organizationID kernel.UUID
	userID         kernel.UUID
	joinedAt       time.Time

	isConstructed bool
}

// NewMembership creates a Membership of userID in organizationID.
func NewMembership(
	id kernel.UUID,
	organizationID kernel.UUID,
	userID kernel.UUID,
	joinedAt time.Time,
) (*Membership, error) {
	m := &Membership{
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setOrganizationID(organizationID),
		m.setUserID(userID),
		m.setJoinedAt(joinedAt),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMembership reconstructs a Membership from persistence.
func RestoreMembership(
	id kernel.UUID,
	organizationID kernel.UUID,
	userID kernel.UUID,
	joinedAt time.Time,
) (*Membership, error) {
	return NewMembership(id, organizationID, userID, joinedAt)
}

// Validate ensures the Membership was created through a constructor.
func (m *Membership) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMembershipIsNotConstructed
	}

	return nil
}

// IsEqual compares two memberships by identifier.
func (m *Membership) IsEqual(other *Membership) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the membership's unique identifier.
func (m *Membership) ID() kernel.UUID {
	return m.id
}

// OrganizationID returns the organization the user belongs to.
func (m *Membership) OrganizationID() kernel.UUID {
	return m.organizationID
}

// UserID returns the member's user identifier.
func (m *Membership) UserID() kernel.UUID {
	return m.userID
}

// JoinedAt returns when the membership was created.
func (m *Membership) JoinedAt() time.Time {
	return m.joinedAt
}

// BelongsTo reports whether the membership is in the given organization.
func (m *Membership) BelongsTo(organizationID kernel.UUID) bool {
	return m.organizationID.IsEqual(organizationID)
}

func (m *Membership) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Membership) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return err
	}
	m.organizationID = organizationID
	return nil
}

func (m *Membership) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	m.userID = userID
	return nil
}

func (m *Membership) setJoinedAt(joinedAt time.Time) error {
	if joinedAt.IsZero() {
		return errs.NewValueIsRequiredError("joinedAt")
	}
	m.joinedAt = joinedAt
	return nil
}
