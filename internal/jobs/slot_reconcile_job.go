package jobs

import (
	"context"
	"log/slog"
	"time"

	"mailroom/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type SlotReconciler interface {
	Handle(ctx context.Context, cmd commands.ReconcileSlotsCommand) (int, error)
}

// SlotReconcileJob frees numbers held by slots that no waiting package
// references, after the grace period has passed.
type SlotReconcileJob struct {
	handler  SlotReconciler
	schedule string
	grace    time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
	now      func() time.Time
}

func NewSlotReconcileJob(handler SlotReconciler, schedule string, grace time.Duration, logger *slog.Logger) *SlotReconcileJob {
	return &SlotReconcileJob{
		handler:  handler,
		schedule: schedule,
		grace:    grace,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "slot_reconcile_job"),
		now:      time.Now,
	}
}

func (j *SlotReconcileJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Slot reconcile job started",
		"schedule", j.schedule, "grace", j.grace)
	return nil
}

func (j *SlotReconcileJob) run(ctx context.Context) {
	cmd, err := commands.NewReconcileSlotsCommand(j.now(), j.grace, commands.DefaultBatchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Slot reconcile job failed", "error", err)
		return
	}

	released, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Slot reconcile job failed", "error", err)
		return
	}
	// Leaks are rare; any release here points at a failed compensation.
	if released > 0 {
		j.logger.WarnContext(ctx, "Leaked package numbers released", "count", released)
	}
}

func (j *SlotReconcileJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Slot reconcile job stopped")
}
