package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetMerchantAssignmentsQuery_Valid(t *testing.T) {
	query, err := queries.NewGetMerchantAssignmentsQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetMerchantAssignmentsQuery_EmptyMerchantID(t *testing.T) {
	_, err := queries.NewGetMerchantAssignmentsQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetMerchantAssignmentsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetMerchantAssignmentsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetMerchantAssignmentsQueryIsNotConstructed)
}

func TestNewGetOrganizationAssignmentsQuery_Valid(t *testing.T) {
	for _, filter := range []queries.AssignmentFilter{
		queries.FilterAll,
		queries.FilterInbox,
		queries.FilterUnassigned,
	} {
		query, err := queries.NewGetOrganizationAssignmentsQuery(kernel.NewUUID(), kernel.NewUUID(), filter)
		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, filter, query.Filter())
	}
}

func TestNewGetOrganizationAssignmentsQuery_UnknownFilter(t *testing.T) {
	_, err := queries.NewGetOrganizationAssignmentsQuery(kernel.NewUUID(), kernel.NewUUID(), "everything")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGetOrganizationAssignmentsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrganizationAssignmentsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrganizationAssignmentsQueryIsNotConstructed)
}

func TestNewGetWorkerAssignmentsQuery_Valid(t *testing.T) {
	query, err := queries.NewGetWorkerAssignmentsQuery(kernel.NewUUID(), assignment.InTransit)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, assignment.InTransit, query.Status())
}

func TestNewGetWorkerAssignmentsQuery_UnknownStatusMeansAll(t *testing.T) {
	query, err := queries.NewGetWorkerAssignmentsQuery(kernel.NewUUID(), assignment.StatusUnknown)
	require.NoError(t, err)
	assert.Equal(t, assignment.StatusUnknown, query.Status())
}

func TestGetWorkerAssignmentsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetWorkerAssignmentsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetWorkerAssignmentsQueryIsNotConstructed)
}

func TestNewGetWorkerPaymentsQuery_Valid(t *testing.T) {
	query, err := queries.NewGetWorkerPaymentsQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestGetWorkerPaymentsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetWorkerPaymentsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetWorkerPaymentsQueryIsNotConstructed)
}
