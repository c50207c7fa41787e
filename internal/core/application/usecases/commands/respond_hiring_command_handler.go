package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/hiring"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/organization"
	"fulfillment/internal/pkg/errs"
)

// RespondHiringCommandHandler handles resolution of pending hiring requests.
// Accepting creates the membership and auto-rejects every other pending
// request involving the user, in the same transaction; the unique index on
// the membership's user column catches the race where two acceptances for
// one user commit concurrently.
type RespondHiringCommandHandler struct {
	uowFactory HiringUoWFactory
}

// NewRespondHiringCommandHandler creates a handler for hiring resolution
// operations.
func NewRespondHiringCommandHandler(uowFactory HiringUoWFactory) RespondHiringCommandHandler {
	return RespondHiringCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the hiring resolution command.
// Loads the request under a row lock so concurrent decisions serialize, and
// verifies the actor is the receiving party before applying the decision.
func (h RespondHiringCommandHandler) Handle(ctx context.Context, cmd RespondHiringCommand) error {
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

	req, err := uow.HiringRequestRepository().GetForUpdate(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	org, err := uow.OrganizationRepository().Get(ctx, req.OrganizationID())
	if err != nil {
		return err
	}

	if !req.IsReceiver(cmd.ActorID(), org.OwnerID()) {
		return errs.NewForbiddenError("hiringRequest", "actor is not the receiving party")
	}

	decision := hiring.Rejected
	if cmd.Accept() {
		decision = hiring.Accepted
	}

	if err = req.Resolve(decision); err != nil {
		return err
	}

	if err = uow.HiringRequestRepository().Update(ctx, req); err != nil {
		return err
	}

	if !cmd.Accept() {
		return uow.Commit(ctx)
	}

	// The affiliation could have appeared after the request was filed:
	// owning an active organization bars joining another one.
	_, err = uow.OrganizationRepository().GetActiveByOwner(ctx, req.UserID())
	if err == nil {
		return errs.NewConflictError("hiringRequest", "user owns an active organization")
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	membership, err := organization.NewMembership(kernel.NewUUID(), req.OrganizationID(),
		req.UserID(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.MembershipRepository().Add(ctx, membership); err != nil {
		return err
	}

	// Joining settles the user's whole negotiation slate.
	leftovers, err := uow.HiringRequestRepository().GetAllPendingByUser(ctx, req.UserID())
	if err != nil {
		return err
	}

	for _, leftover := range leftovers {
		if leftover.IsEqual(req) {
			continue
		}

		if err = leftover.Resolve(hiring.Rejected); err != nil {
			return err
		}

		if err = uow.HiringRequestRepository().Update(ctx, leftover); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
