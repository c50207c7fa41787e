package hiring_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/hiring"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvitation(t *testing.T) {
	id := kernel.NewUUID()
	organizationID := kernel.NewUUID()
	userID := kernel.NewUUID()
	createdAt := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)

	r, err := hiring.NewInvitation(id, organizationID, userID, "join us", createdAt)
	require.NoError(t, err)

	assert.True(t, id.IsEqual(r.ID()))
	assert.True(t, organizationID.IsEqual(r.OrganizationID()))
	assert.True(t, userID.IsEqual(r.UserID()))
	assert.Equal(t, hiring.Invitation, r.Direction())
	assert.Equal(t, hiring.Pending, r.Status())
	assert.Equal(t, "join us", r.Message())
	assert.True(t, r.IsPending())
}

func TestNewApplication(t *testing.T) {
	r, err := hiring.NewApplication(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "", time.Now().UTC())
	require.NoError(t, err)

	assert.Equal(t, hiring.Application, r.Direction())
	assert.Equal(t, hiring.Pending, r.Status())
}

func TestRequestIsReceiver(t *testing.T) {
	ownerID := kernel.NewUUID()
	userID := kernel.NewUUID()

	invitation, err := hiring.NewInvitation(kernel.NewUUID(), kernel.NewUUID(), userID, "", time.Now().UTC())
	require.NoError(t, err)

	// An invitation is answered by the invited user.
	assert.True(t, invitation.IsReceiver(userID, ownerID))
	assert.False(t, invitation.IsReceiver(ownerID, ownerID))
	assert.False(t, invitation.IsReceiver(kernel.NewUUID(), ownerID))

	application, err := hiring.NewApplication(kernel.NewUUID(), kernel.NewUUID(), userID, "", time.Now().UTC())
	require.NoError(t, err)

	// An application is answered by the organization owner.
	assert.True(t, application.IsReceiver(ownerID, ownerID))
	assert.False(t, application.IsReceiver(userID, ownerID))
}

func TestRequestResolve(t *testing.T) {
	tests := []struct {
		name     string
		decision hiring.Status
	}{
		{"accept", hiring.Accepted},
		{"reject", hiring.Rejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := hiring.NewInvitation(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "", time.Now().UTC())
			require.NoError(t, err)

			require.NoError(t, r.Resolve(tt.decision))
			assert.Equal(t, tt.decision, r.Status())
			assert.False(t, r.IsPending())
			assert.True(t, r.Status().IsTerminal())
		})
	}
}

func TestRequestResolveRejectsInvalidDecision(t *testing.T) {
	r, err := hiring.NewInvitation(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "", time.Now().UTC())
	require.NoError(t, err)

	assert.ErrorIs(t, r.Resolve(hiring.Pending), errs.ErrValueIsInvalid)
}

func TestRequestResolveIsFinal(t *testing.T) {
	r, err := hiring.NewInvitation(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "", time.Now().UTC())
	require.NoError(t, err)

	require.NoError(t, r.Resolve(hiring.Accepted))

	assert.ErrorIs(t, r.Resolve(hiring.Rejected), errs.ErrInvalidState)
	assert.Equal(t, hiring.Accepted, r.Status())
}

func TestRestoreRequest(t *testing.T) {
	id := kernel.NewUUID()

	r, err := hiring.RestoreRequest(
		id,
		kernel.NewUUID(),
		kernel.NewUUID(),
		hiring.Application,
		hiring.Rejected,
		"maybe later",
		time.Now().UTC(),
	)
	require.NoError(t, err)

	assert.True(t, id.IsEqual(r.ID()))
	assert.Equal(t, hiring.Rejected, r.Status())
	assert.False(t, r.IsPending())
}

func TestRequestValidate(t *testing.T) {
	var r hiring.Request
	assert.ErrorIs(t, r.Validate(), hiring.ErrRequestIsNotConstructed)
}
