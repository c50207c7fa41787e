package errs_test

import (
	"errors"
	"testing"

	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("assignmentId", "123")

		assert.Equal(t, "assignmentId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("assignmentId", "123", cause)

		assert.Equal(t, "assignmentId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: assignmentId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestConflictError(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("assignment", "order already has an active assignment")

		assert.Equal(t, "assignment", err.ParamName)
		assert.Equal(t, "order already has an active assignment", err.Details)
		require.NoError(t, err.Cause)
		assert.Equal(t, "conflict: assignment: order already has an active assignment", err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})

	t.Run("NewConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicated key not allowed")
		err := errs.NewConflictErrorWithCause("payment", "payment already exists", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"conflict: payment: payment already exists (cause: duplicated key not allowed)",
			err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})
}

func TestInvalidStateError(t *testing.T) {
	err := errs.NewInvalidStateError("assignment", "Completed", "advance to InTransit")

	assert.Equal(t, "assignment", err.ParamName)
	assert.Equal(t, "Completed", err.State)
	assert.Equal(t, "advance to InTransit", err.Operation)
	assert.Equal(t,
		"state is invalid: assignment in state Completed does not permit advance to InTransit",
		err.Error())
	assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
}

func TestForbiddenError(t *testing.T) {
	err := errs.NewForbiddenError("assignment", "actor is not the organization owner")

	assert.Equal(t, "assignment", err.ParamName)
	assert.Equal(t, "actor is not the organization owner", err.Details)
	assert.Equal(t,
		"operation is forbidden: assignment: actor is not the organization owner",
		err.Error())
	assert.Equal(t, errs.ErrForbidden, err.Unwrap())
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("fee")

		assert.Equal(t, "fee", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: fee", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("must be positive")
		err := errs.NewValueIsInvalidErrorWithCause("fee", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: fee (cause: must be positive)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("text\nwith newline")
		assert.Contains(t, err.Error(), "text with newline")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("organizationId")

		assert.Equal(t, "organizationId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: organizationId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("organizationId", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: organizationId (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrConflict)
		require.Error(t, errs.ErrInvalidState)
		require.Error(t, errs.ErrForbidden)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsRequired)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "conflict", errs.ErrConflict.Error())
		assert.Equal(t, "state is invalid", errs.ErrInvalidState.Error())
		assert.Equal(t, "operation is forbidden", errs.ErrForbidden.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		notFoundErr := errs.NewObjectNotFoundError("assignmentId", "123")
		require.ErrorIs(t, notFoundErr, errs.ErrObjectNotFound)

		conflictErr := errs.NewConflictError("membership", "user already belongs to an organization")
		require.ErrorIs(t, conflictErr, errs.ErrConflict)

		invalidStateErr := errs.NewInvalidStateError("hiringRequest", "Accepted", "respond")
		require.ErrorIs(t, invalidStateErr, errs.ErrInvalidState)

		forbiddenErr := errs.NewForbiddenError("assignment", "actor is not the assignee")
		require.ErrorIs(t, forbiddenErr, errs.ErrForbidden)

		valueInvalidErr := errs.NewValueIsInvalidError("fee")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueRequiredErr := errs.NewValueIsRequiredError("street")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)
	})
}
