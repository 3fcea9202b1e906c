package commands

import "context"

// CancelInvitationCommandHandler withdraws a pending invitation.
type CancelInvitationCommandHandler struct {
	uowFactory InvitationUoWFactory
}

func NewCancelInvitationCommandHandler(uowFactory InvitationUoWFactory) CancelInvitationCommandHandler {
	return CancelInvitationCommandHandler{uowFactory: uowFactory}
}

func (h *CancelInvitationCommandHandler) Handle(ctx context.Context, cmd CancelInvitationCommand) error {
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

	repo := uow.InvitationRepository()
	inv, err := repo.Get(ctx, cmd.InvitationID())
	if err != nil {
		return notFound(ErrInvitationNotFound, err)
	}
	if err = inv.Cancel(); err != nil {
		return err
	}
	if err = repo.Update(ctx, inv); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
