package commands

import (
	"context"
	"log/slog"

	"mailroom/internal/core/domain/model/mailroom"
	"mailroom/internal/core/ports"
)

// UpdateMailroomSettingsCommandHandler saves the settings form and evicts the
// cached slug lookup of the mailroom after commit.
type UpdateMailroomSettingsCommandHandler struct {
	uowFactory MailroomUoWFactory
	cache      ports.Cache
	logger     *slog.Logger
}

// NewUpdateMailroomSettingsCommandHandler accepts a nil cache when caching is disabled.
func NewUpdateMailroomSettingsCommandHandler(
	uowFactory MailroomUoWFactory,
	cache ports.Cache,
	logger *slog.Logger,
) UpdateMailroomSettingsCommandHandler {
	return UpdateMailroomSettingsCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		logger:     logger.With("component", "update_mailroom_settings"),
	}
}

func (h *UpdateMailroomSettingsCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateMailroomSettingsCommand,
) (*mailroom.Mailroom, error) {
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

	repo := uow.MailroomRepository()
	m, err := repo.Get(ctx, cmd.MailroomID())
	if err != nil {
		return nil, notFound(ErrMailroomNotFound, err)
	}

	if err = m.UpdateSettings(cmd.Settings()); err != nil {
		return nil, err
	}
	if err = repo.Update(ctx, m); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if h.cache != nil {
		key := ports.MailroomSlugKey(m.OrganizationID(), m.Slug())
		if err = h.cache.Delete(ctx, key); err != nil {
			h.logger.WarnContext(ctx, "failed to evict cached mailroom", "key", key, "error", err)
		}
	}
	return m, nil
}
