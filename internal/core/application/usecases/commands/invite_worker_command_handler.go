package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/hiring"
	"fulfillment/internal/pkg/errs"
)

// InviteWorkerCommandHandler handles the organization side of hiring
// negotiation. Creates a Pending invitation unless the user is already a
// member somewhere or an identical invitation is already open.
type InviteWorkerCommandHandler struct {
	uowFactory HiringUoWFactory
}

// NewInviteWorkerCommandHandler creates a handler for worker invitation
// operations.
func NewInviteWorkerCommandHandler(uowFactory HiringUoWFactory) InviteWorkerCommandHandler {
	return InviteWorkerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the invitation command.
func (h InviteWorkerCommandHandler) Handle(ctx context.Context, cmd InviteWorkerCommand) error {
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

	if !org.IsOwnedBy(cmd.ActorID()) {
		return errs.NewForbiddenError("organization", "actor does not own the organization")
	}

	if !org.IsActive() {
		return errs.NewInvalidStateError("organization", "disabled", "invite worker")
	}

	_, err = uow.MembershipRepository().GetActiveByUser(ctx, cmd.UserID())
	if err == nil {
		return errs.NewConflictError("hiringRequest", "user already belongs to an organization")
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	// Owners work their own organization's deliveries, so owning one is an
	// affiliation just like a membership row.
	_, err = uow.OrganizationRepository().GetActiveByOwner(ctx, cmd.UserID())
	if err == nil {
		return errs.NewConflictError("hiringRequest", "user owns an active organization")
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	_, err = uow.HiringRequestRepository().FindPending(ctx, org.ID(), cmd.UserID(), hiring.Invitation)
	if err == nil {
		return errs.NewConflictError("hiringRequest", "invitation is already pending")
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	req, err := hiring.NewInvitation(cmd.RequestID(), org.ID(), cmd.UserID(),
		cmd.Message(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.HiringRequestRepository().Add(ctx, req); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
