package commands

import (
	"context"
)

// RemoveResidentCommandHandler soft-removes a resident. The row stays so that
// existing packages keep their reference.
type RemoveResidentCommandHandler struct {
	uowFactory ResidentUoWFactory
}

func NewRemoveResidentCommandHandler(uowFactory ResidentUoWFactory) RemoveResidentCommandHandler {
	return RemoveResidentCommandHandler{uowFactory: uowFactory}
}

func (h *RemoveResidentCommandHandler) Handle(ctx context.Context, cmd RemoveResidentCommand) error {
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

	repo := uow.ResidentRepository()
	r, err := repo.GetInMailroom(ctx, cmd.MailroomID(), cmd.ResidentID())
	if err != nil {
		return notFound(ErrResidentNotFound, err)
	}

	r.RemoveIndividually()
	if err = repo.Update(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
