package commands

import (
	"context"
	"log/slog"
	"time"

	"mailroom/internal/core/domain/model/invitation"
	"mailroom/internal/core/ports"
	"mailroom/internal/pkg/errs"
)

// CreateInvitationCommandHandler stores a PENDING invitation and emails it.
// A second pending invitation for the same email in the same organization is
// rejected as already existing.
type CreateInvitationCommandHandler struct {
	uowFactory InvitationUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

func NewCreateInvitationCommandHandler(
	uowFactory InvitationUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) CreateInvitationCommandHandler {
	return CreateInvitationCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "create_invitation"),
	}
}

func (h *CreateInvitationCommandHandler) Handle(ctx context.Context, cmd CreateInvitationCommand) (*invitation.Invitation, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	inv, err := invitation.NewInvitation(cmd.InvitationID(), cmd.Email(), cmd.Role(), cmd.OrganizationID(),
		cmd.MailroomID(), cmd.InvitedBy(), now)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.InvitationRepository()
	pending, err := repo.HasPending(ctx, inv.Email(), inv.OrganizationID(), now)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, errs.NewObjectAlreadyExistsError("invitation", inv.Email())
	}

	if err = repo.Add(ctx, inv); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.notifier.InvitationCreated(ctx, ports.InvitationNotice{
		InvitationID: inv.ID().String(),
		Email:        inv.Email(),
		Role:         string(inv.Role()),
		ExpiresAt:    inv.ExpiresAt(),
	}); err != nil {
		h.logger.WarnContext(ctx, "invitation email not sent", "invitation_id", inv.ID().String(), "error", err)
	}
	return inv, nil
}
