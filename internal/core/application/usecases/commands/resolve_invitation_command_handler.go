package commands

import (
	"context"
	"errors"
	"time"

	"mailroom/internal/core/domain/model/invitation"
)

// ResolveInvitationCommandHandler settles an invitation after registration.
// Resolving an expired invitation marks it FAILED, commits that, and still
// returns invitation.ErrInvitationExpired.
type ResolveInvitationCommandHandler struct {
	uowFactory InvitationUoWFactory
}

func NewResolveInvitationCommandHandler(uowFactory InvitationUoWFactory) ResolveInvitationCommandHandler {
	return ResolveInvitationCommandHandler{uowFactory: uowFactory}
}

func (h *ResolveInvitationCommandHandler) Handle(ctx context.Context, cmd ResolveInvitationCommand) (*invitation.Invitation, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.InvitationRepository()
	inv, err := repo.Get(ctx, cmd.InvitationID())
	if err != nil {
		return nil, notFound(ErrInvitationNotFound, err)
	}

	now := time.Now()
	resolveErr := inv.Resolve(now)
	switch {
	case resolveErr == nil:
	case errors.Is(resolveErr, invitation.ErrInvitationExpired) && inv.Expire(now):
	default:
		return nil, resolveErr
	}

	if err = repo.Update(ctx, inv); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	if resolveErr != nil {
		return nil, resolveErr
	}
	return inv, nil
}
