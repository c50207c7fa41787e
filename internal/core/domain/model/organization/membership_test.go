package organization_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/organization"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMembership(t *testing.T) {
	id := kernel.NewUUID()
	organizationID := kernel.NewUUID()
	userID := kernel.NewUUID()
	joinedAt := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)

	m, err := organization.NewMembership(id, organizationID, userID, joinedAt)
	require.NoError(t, err)

	assert.True(t, id.IsEqual(m.ID()))
	assert.True(t, organizationID.IsEqual(m.OrganizationID()))
	assert.True(t, userID.IsEqual(m.UserID()))
	assert.Equal(t, joinedAt, m.JoinedAt())
}

func TestMembershipBelongsTo(t *testing.T) {
	organizationID := kernel.NewUUID()

	m, err := organization.NewMembership(kernel.NewUUID(), organizationID, kernel.NewUUID(), time.Now().UTC())
	require.NoError(t, err)

	assert.True(t, m.BelongsTo(organizationID))
	assert.False(t, m.BelongsTo(kernel.NewUUID()))
}

func TestMembershipValidate(t *testing.T) {
	var m organization.Membership
	assert.ErrorIs(t, m.Validate(), organization.ErrMembershipIsNotConstructed)
}
