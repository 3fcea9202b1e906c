package commands

import (
	"context"
	"errors"
	"log/slog"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/slot"
	"mailroom/internal/pkg/metrics"
)

// AllocatePackageNumberCommandHandler reserves one number from the pool.
//
// The reservation is a single conditional update in the datastore; nothing
// about the pool is kept in process memory. Exhaustion is terminal for the
// call: callers decide whether to retry after the pool is enlarged.
type AllocatePackageNumberCommandHandler struct {
	uowFactory SlotUoWFactory
	logger     *slog.Logger
}

func NewAllocatePackageNumberCommandHandler(uowFactory SlotUoWFactory, logger *slog.Logger) AllocatePackageNumberCommandHandler {
	return AllocatePackageNumberCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "allocate_package_number"),
	}
}

// Handle returns the reserved number or slot.ErrQueueExhausted.
func (h *AllocatePackageNumberCommandHandler) Handle(
	ctx context.Context,
	cmd AllocatePackageNumberCommand,
) (kernel.PackageNumber, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.PackageNumber{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.PackageNumber{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	number, err := uow.SlotRepository().AllocateNext(ctx, cmd.MailroomID())
	if err != nil {
		if errors.Is(err, slot.ErrQueueExhausted) {
			metrics.QueueExhausted.Inc()
			h.logger.WarnContext(ctx, "package number pool exhausted", "mailroom_id", cmd.MailroomID().String())
		}
		return kernel.PackageNumber{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.PackageNumber{}, err
	}

	metrics.SlotsAllocated.Inc()
	return number, nil
}
