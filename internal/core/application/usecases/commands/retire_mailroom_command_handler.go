package commands

import (
	"context"
	"log/slog"

	"mailroom/internal/core/domain/model/mailroom"
	"mailroom/internal/core/ports"
)

// RetireMailroomCommandHandler marks a mailroom DEFUNCT. Its packages and pool
// stay in place, but registration and allocation are refused from then on.
type RetireMailroomCommandHandler struct {
	uowFactory MailroomUoWFactory
	cache      ports.Cache
	logger     *slog.Logger
}

// NewRetireMailroomCommandHandler accepts a nil cache when caching is disabled.
func NewRetireMailroomCommandHandler(
	uowFactory MailroomUoWFactory,
	cache ports.Cache,
	logger *slog.Logger,
) RetireMailroomCommandHandler {
	return RetireMailroomCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		logger:     logger.With("component", "retire_mailroom"),
	}
}

func (h *RetireMailroomCommandHandler) Handle(ctx context.Context, cmd RetireMailroomCommand) (*mailroom.Mailroom, error) {
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

	m.Retire()
	if err = repo.Update(ctx, m); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "mailroom retired", "mailroom_id", m.ID().String())

	if h.cache != nil {
		key := ports.MailroomSlugKey(m.OrganizationID(), m.Slug())
		if err = h.cache.Delete(ctx, key); err != nil {
			h.logger.WarnContext(ctx, "failed to evict cached mailroom", "key", key, "error", err)
		}
	}
	return m, nil
}
