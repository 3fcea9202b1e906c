// Package jobs provides scheduled background tasks for the mailroom service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field specs with seconds)
// and each one drives a single command handler per tick.
//
// # Available Jobs
//
// 1. InvitationExpiryJob - marks PENDING invitations past their expiry as FAILED
// 2. SlotReconcileJob - returns package numbers leaked by interrupted registrations to their pool
//
// # Usage
//
//	jobManager := jobs.NewJobManager(jobs.Config{
//		InvitationExpirySchedule: "0 */5 * * * *",
//		SlotReconcileSchedule:    "30 */10 * * * *",
//		SlotReconcileGrace:       15 * time.Minute,
//	}, &expireHandler, &reconcileHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed tick is logged and retried on the next tick. Failed job starts stop
// any already running jobs.
package jobs
