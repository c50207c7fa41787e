package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/organization"
	"fulfillment/internal/pkg/errs"
)

// CreateOrganizationCommandHandler handles the business logic for
// organization registration. New organizations start active, with the owner
// implicitly able to work deliveries without a membership row. An owner can
// run at most one active organization at a time.
type CreateOrganizationCommandHandler struct {
	uowFactory OrganizationUoWFactory
}

// NewCreateOrganizationCommandHandler creates a handler for organization
// registration operations.
func NewCreateOrganizationCommandHandler(uowFactory OrganizationUoWFactory) CreateOrganizationCommandHandler {
	return CreateOrganizationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the organization registration command.
// Uses a transaction to ensure the organization is properly persisted or
// rolled back on error.
func (h CreateOrganizationCommandHandler) Handle(ctx context.Context, cmd CreateOrganizationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.OrganizationRepository().GetActiveByOwner(ctx, cmd.OwnerID()); err == nil {
		return errs.NewConflictError("organization", "owner already has an active organization")
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	org, err := organization.NewOrganization(cmd.OrganizationID(), cmd.OwnerID(),
		cmd.Name(), cmd.About(), cmd.Depot())
	if err != nil {
		return err
	}

	if err = uow.OrganizationRepository().Add(ctx, org); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
