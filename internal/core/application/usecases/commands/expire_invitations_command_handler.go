package commands

import (
	"context"
	"log/slog"
)

// ExpireInvitationsCommandHandler processes one batch per call.
type ExpireInvitationsCommandHandler struct {
	uowFactory InvitationUoWFactory
	logger     *slog.Logger
}

func NewExpireInvitationsCommandHandler(uowFactory InvitationUoWFactory, logger *slog.Logger) ExpireInvitationsCommandHandler {
	return ExpireInvitationsCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "expire_invitations"),
	}
}

// Handle returns how many invitations were expired.
func (h *ExpireInvitationsCommandHandler) Handle(ctx context.Context, cmd ExpireInvitationsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.InvitationRepository()
	due, err := repo.ListExpiredPending(ctx, cmd.Now(), cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, inv := range due {
		if !inv.Expire(cmd.Now()) {
			continue
		}
		if err = repo.Update(ctx, inv); err != nil {
			return 0, err
		}
		expired++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	if expired > 0 {
		h.logger.InfoContext(ctx, "invitations expired", "count", expired)
	}
	return expired, nil
}
