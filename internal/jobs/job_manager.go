package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// Config holds the six-field cron specs of every job.
type Config struct {
	InvitationExpirySchedule string
	SlotReconcileSchedule    string
	SlotReconcileGrace       time.Duration
}

// JobManager starts and stops all background jobs together.
type JobManager struct {
	invitationExpiryJob *InvitationExpiryJob
	slotReconcileJob    *SlotReconcileJob
}

func NewJobManager(
	cfg Config,
	expirer InvitationExpirer,
	reconciler SlotReconciler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		invitationExpiryJob: NewInvitationExpiryJob(expirer, cfg.InvitationExpirySchedule, logger),
		slotReconcileJob:    NewSlotReconcileJob(reconciler, cfg.SlotReconcileSchedule, cfg.SlotReconcileGrace, logger),
	}
}

// StartAll returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.invitationExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start invitation expiry job: %w", err)
	}

	if err := jm.slotReconcileJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.invitationExpiryJob.Stop()
		return fmt.Errorf("failed to start slot reconcile job: %w", err)
	}

	return nil
}

// StopAll waits for running ticks to finish.
func (jm *JobManager) StopAll() {
	jm.slotReconcileJob.Stop()
	jm.invitationExpiryJob.Stop()
}
