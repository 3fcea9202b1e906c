package commands

import (
	"context"
	"log/slog"

	"mailroom/internal/pkg/metrics"
)

// ReconcileSlotsCommandHandler releases leaked slots one conditional update at
// a time, so a slot that got referenced meanwhile is skipped.
type ReconcileSlotsCommandHandler struct {
	uowFactory SlotUoWFactory
	logger     *slog.Logger
}

func NewReconcileSlotsCommandHandler(uowFactory SlotUoWFactory, logger *slog.Logger) ReconcileSlotsCommandHandler {
	return ReconcileSlotsCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "reconcile_slots"),
	}
}

// Handle returns how many slots were released.
func (h *ReconcileSlotsCommandHandler) Handle(ctx context.Context, cmd ReconcileSlotsCommand) (int, error) {
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

	repo := uow.SlotRepository()
	leaked, err := repo.ListLeaked(ctx, cmd.Cutoff(), cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	released := 0
	for _, s := range leaked {
		if !s.IdleSince(cmd.Cutoff()) {
			continue
		}
		ok, err := repo.ReleaseIfLeaked(ctx, s, cmd.Cutoff())
		if err != nil {
			return 0, err
		}
		if !ok {
			continue
		}
		released++
		h.logger.WarnContext(ctx, "leaked package number returned to pool",
			"mailroom_id", s.MailroomID().String(), "package_number", s.Number().Int())
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	metrics.SlotsReleased.WithLabelValues(metrics.ReleaseReconcile).Add(float64(released))
	return released, nil
}
