package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/hiring"
	"fulfillment/internal/pkg/errs"
)

// ApplyToOrganizationCommandHandler handles the worker side of hiring
// negotiation. Creates a Pending application unless the applicant is already
// a member somewhere or an identical application is already open.
type ApplyToOrganizationCommandHandler struct {
	uowFactory HiringUoWFactory
}

// NewApplyToOrganizationCommandHandler creates a handler for application
// operations.
func NewApplyToOrganizationCommandHandler(uowFactory HiringUoWFactory) ApplyToOrganizationCommandHandler {
	return ApplyToOrganizationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the application command.
func (h ApplyToOrganizationCommandHandler) Handle(ctx context.Context, cmd ApplyToOrganizationCommand) error {
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

	org, err := uow.OrganizationRepository().Get(ctx, cmd.OrganizationID())
	if err != nil {
		return err
	}

	if !org.IsActive() {
		return errs.NewInvalidStateError("organization", "disabled", "apply")
	}

	_, err = uow.MembershipRepository().GetActiveByUser(ctx, cmd.ActorID())
	if err == nil {
		return errs.NewConflictError("hiringRequest", "user already belongs to an organization")
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	// Owning an active organization counts as an affiliation too.
	_, err = uow.OrganizationRepository().GetActiveByOwner(ctx, cmd.ActorID())
	if err == nil {
		return errs.NewConflictError("hiringRequest", "user owns an active organization")
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	_, err = uow.HiringRequestRepository().FindPending(ctx, org.ID(), cmd.ActorID(), hiring.Application)
	if err == nil {
		return errs.NewConflictError("hiringRequest", "application is already pending")
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	req, err := hiring.NewApplication(cmd.RequestID(), org.ID(), cmd.ActorID(),
		cmd.Message(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.HiringRequestRepository().Add(ctx, req); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
