package commands

import (
	"context"
	"errors"
	"log/slog"

	"mailroom/internal/core/domain/model/slot"
	"mailroom/internal/pkg/metrics"
)

// ReleasePackageNumberCommandHandler makes a number available again.
// Releasing an already available number succeeds, so retries after a partial
// failure upstream are safe.
type ReleasePackageNumberCommandHandler struct {
	uowFactory SlotUoWFactory
	logger     *slog.Logger
}

func NewReleasePackageNumberCommandHandler(uowFactory SlotUoWFactory, logger *slog.Logger) ReleasePackageNumberCommandHandler {
	return ReleasePackageNumberCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "release_package_number"),
	}
}

// Handle reports true once the slot is available. slot.ErrSlotNotFound means
// the number was never provisioned for the mailroom and is logged as a data error.
func (h *ReleasePackageNumberCommandHandler) Handle(ctx context.Context, cmd ReleasePackageNumberCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.SlotRepository().Release(ctx, cmd.MailroomID(), cmd.Number()); err != nil {
		if errors.Is(err, slot.ErrSlotNotFound) {
			h.logger.ErrorContext(ctx, "release of a package number that was never provisioned",
				"mailroom_id", cmd.MailroomID().String(), "package_number", cmd.Number().Int())
		}
		return false, err
	}

	if err := uow.Commit(ctx); err != nil {
		return false, err
	}

	metrics.SlotsReleased.WithLabelValues(metrics.ReleaseManual).Inc()
	return true, nil
}
