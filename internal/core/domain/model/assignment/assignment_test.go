package assignment_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestedAssignment(t *testing.T) *assignment.Assignment {
	t.Helper()

	address, err := kernel.NewAddress("12 Pier Rd", "Portsmouth", "PO1 3AX")
	require.NoError(t, err)
	dropoff, err := kernel.NewLocation(7, 9)
	require.NoError(t, err)

	a, err := assignment.NewAssignment(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		address,
		dropoff,
		decimal.NewFromInt(50),
		"leave at reception",
	)
	require.NoError(t, err)
	return a
}

func acceptedAssignment(t *testing.T) *assignment.Assignment {
	t.Helper()
	a := requestedAssignment(t)
	require.NoError(t, a.Review(assignment.Assigned))
	return a
}

func TestNewAssignment(t *testing.T) {
	a := requestedAssignment(t)

	assert.Equal(t, assignment.Requested, a.Status())
	assert.Nil(t, a.Worker())
	assert.Nil(t, a.AssignedAt())
	assert.Equal(t, "leave at reception", a.Instructions())
	assert.True(t, a.IsActive())
	assert.False(t, a.IsUnassigned())
}

func TestNewAssignmentRequiresPositiveFee(t *testing.T) {
	address, err := kernel.NewAddress("12 Pier Rd", "Portsmouth", "")
	require.NoError(t, err)
	dropoff, err := kernel.NewLocation(7, 9)
	require.NoError(t, err)

	for _, fee := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-10)} {
		_, err = assignment.NewAssignment(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			address, dropoff, fee, "")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	}
}

func TestAssignmentReview(t *testing.T) {
	t.Run("accept", func(t *testing.T) {
		a := requestedAssignment(t)
		require.NoError(t, a.Review(assignment.Assigned))
		assert.Equal(t, assignment.Assigned, a.Status())
		assert.True(t, a.IsUnassigned())
	})

	t.Run("reject", func(t *testing.T) {
		a := requestedAssignment(t)
		require.NoError(t, a.Review(assignment.Cancelled))
		assert.Equal(t, assignment.Cancelled, a.Status())
		assert.False(t, a.IsActive())
	})

	t.Run("invalid decision", func(t *testing.T) {
		a := requestedAssignment(t)
		assert.ErrorIs(t, a.Review(assignment.Completed), errs.ErrValueIsInvalid)
	})

	t.Run("not requested", func(t *testing.T) {
		a := acceptedAssignment(t)
		assert.ErrorIs(t, a.Review(assignment.Assigned), errs.ErrInvalidState)
	})
}

func TestAssignmentAssignWorker(t *testing.T) {
	a := acceptedAssignment(t)
	workerID := kernel.NewUUID()
	at := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	require.NoError(t, a.AssignWorker(workerID, at))

	require.NotNil(t, a.Worker())
	assert.True(t, workerID.IsEqual(*a.Worker()))
	require.NotNil(t, a.AssignedAt())
	assert.Equal(t, at, *a.AssignedAt())
	assert.Equal(t, assignment.Assigned, a.Status())
	assert.False(t, a.IsUnassigned())
}

func TestAssignmentReassignWorkerBeforeTransit(t *testing.T) {
	a := acceptedAssignment(t)
	require.NoError(t, a.AssignWorker(kernel.NewUUID(), time.Now().UTC()))

	replacement := kernel.NewUUID()
	require.NoError(t, a.AssignWorker(replacement, time.Now().UTC()))

	assert.True(t, replacement.IsEqual(*a.Worker()))
}

func TestAssignmentAssignWorkerRejectedOutsideAssigned(t *testing.T) {
	t.Run("requested", func(t *testing.T) {
		a := requestedAssignment(t)
		assert.ErrorIs(t, a.AssignWorker(kernel.NewUUID(), time.Now().UTC()), errs.ErrInvalidState)
	})

	t.Run("in transit", func(t *testing.T) {
		a := acceptedAssignment(t)
		workerID := kernel.NewUUID()
		require.NoError(t, a.AssignWorker(workerID, time.Now().UTC()))
		require.NoError(t, a.Advance(assignment.InTransit, workerID))

		assert.ErrorIs(t, a.AssignWorker(kernel.NewUUID(), time.Now().UTC()), errs.ErrInvalidState)
	})
}

func TestAssignmentAdvance(t *testing.T) {
	a := acceptedAssignment(t)
	workerID := kernel.NewUUID()
	require.NoError(t, a.AssignWorker(workerID, time.Now().UTC()))

	require.NoError(t, a.Advance(assignment.InTransit, workerID))
	assert.Equal(t, assignment.InTransit, a.Status())

	require.NoError(t, a.Advance(assignment.Completed, workerID))
	assert.Equal(t, assignment.Completed, a.Status())
	assert.True(t, a.Status().IsTerminal())
}

func TestAssignmentAdvanceForbiddenForOtherActors(t *testing.T) {
	a := acceptedAssignment(t)
	workerID := kernel.NewUUID()
	require.NoError(t, a.AssignWorker(workerID, time.Now().UTC()))

	err := a.Advance(assignment.InTransit, kernel.NewUUID())
	assert.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, assignment.Assigned, a.Status())
}

func TestAssignmentAdvanceRejectsIllegalTransitions(t *testing.T) {
	t.Run("skip in transit", func(t *testing.T) {
		a := acceptedAssignment(t)
		workerID := kernel.NewUUID()
		require.NoError(t, a.AssignWorker(workerID, time.Now().UTC()))

		assert.ErrorIs(t, a.Advance(assignment.Completed, workerID), errs.ErrInvalidState)
	})

	t.Run("advance completed", func(t *testing.T) {
		a := acceptedAssignment(t)
		workerID := kernel.NewUUID()
		require.NoError(t, a.AssignWorker(workerID, time.Now().UTC()))
		require.NoError(t, a.Advance(assignment.InTransit, workerID))
		require.NoError(t, a.Advance(assignment.Completed, workerID))

		assert.ErrorIs(t, a.Advance(assignment.InTransit, workerID), errs.ErrInvalidState)
	})

	t.Run("no worker attached", func(t *testing.T) {
		a := acceptedAssignment(t)
		assert.ErrorIs(t, a.Advance(assignment.InTransit, kernel.NewUUID()), errs.ErrForbidden)
	})
}

func TestRestoreAssignment(t *testing.T) {
	address, err := kernel.NewAddress("12 Pier Rd", "Portsmouth", "")
	require.NoError(t, err)
	dropoff, err := kernel.NewLocation(7, 9)
	require.NoError(t, err)

	workerID := kernel.NewUUID()
	assignedAt := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	t.Run("in transit with worker", func(t *testing.T) {
		a, err := assignment.RestoreAssignment(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			address, dropoff, decimal.NewFromInt(50), "",
			assignment.InTransit, &workerID, &assignedAt)
		require.NoError(t, err)

		assert.Equal(t, assignment.InTransit, a.Status())
		assert.True(t, workerID.IsEqual(*a.Worker()))
	})

	t.Run("assigned without worker", func(t *testing.T) {
		a, err := assignment.RestoreAssignment(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			address, dropoff, decimal.NewFromInt(50), "",
			assignment.Assigned, nil, nil)
		require.NoError(t, err)

		assert.True(t, a.IsUnassigned())
	})

	t.Run("in transit without worker is rejected", func(t *testing.T) {
		_, err := assignment.RestoreAssignment(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			address, dropoff, decimal.NewFromInt(50), "",
			assignment.InTransit, nil, nil)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("requested with worker is rejected", func(t *testing.T) {
		_, err := assignment.RestoreAssignment(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			address, dropoff, decimal.NewFromInt(50), "",
			assignment.Requested, &workerID, &assignedAt)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestAssignmentValidate(t *testing.T) {
	var a assignment.Assignment
	assert.ErrorIs(t, a.Validate(), assignment.ErrAssignmentIsNotConstructed)
}
