package jobs

import (
	"context"
	"log/slog"
	"time"

	"mailroom/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type InvitationExpirer interface {
	Handle(ctx context.Context, cmd commands.ExpireInvitationsCommand) (int, error)
}

// InvitationExpiryJob fails overdue invitations in batches.
type InvitationExpiryJob struct {
	handler  InvitationExpirer
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
	now      func() time.Time
}

func NewInvitationExpiryJob(handler InvitationExpirer, schedule string, logger *slog.Logger) *InvitationExpiryJob {
	return &InvitationExpiryJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "invitation_expiry_job"),
		now:      time.Now,
	}
}

func (j *InvitationExpiryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Invitation expiry job started", "schedule", j.schedule)
	return nil
}

// run drains every overdue invitation, one batch per command.
func (j *InvitationExpiryJob) run(ctx context.Context) {
	total := 0
	for {
		cmd, err := commands.NewExpireInvitationsCommand(j.now(), commands.DefaultBatchSize)
		if err != nil {
			j.logger.ErrorContext(ctx, "Invitation expiry job failed", "error", err)
			return
		}

		expired, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Invitation expiry job failed", "error", err, "expired", total)
			return
		}
		total += expired
		if expired < commands.DefaultBatchSize {
			break
		}
	}

	if total > 0 {
		j.logger.InfoContext(ctx, "Invitations expired", "count", total)
	}
}

func (j *InvitationExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Invitation expiry job stopped")
}
