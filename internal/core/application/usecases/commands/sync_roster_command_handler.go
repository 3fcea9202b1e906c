package commands

import (
	"context"
	"log/slog"
	"strings"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/resident"
)

// RosterSyncResult counts what a roster upload changed.
type RosterSyncResult struct {
	Added       int
	Updated     int
	Reactivated int
	Removed     int
	Unchanged   int
}

// SyncRosterCommandHandler applies a roster upload in one transaction:
//   - unknown student ids become new ACTIVE residents
//   - known ones are refreshed and re-activated if they were removed
//   - active residents missing from the roster become REMOVED_BULK
//
// Residents an admin set aside (ADMIN_ACTION) are left untouched.
type SyncRosterCommandHandler struct {
	uowFactory ResidentUoWFactory
	logger     *slog.Logger
}

func NewSyncRosterCommandHandler(uowFactory ResidentUoWFactory, logger *slog.Logger) SyncRosterCommandHandler {
	return SyncRosterCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "sync_roster"),
	}
}

func (h *SyncRosterCommandHandler) Handle(ctx context.Context, cmd SyncRosterCommand) (RosterSyncResult, error) {
	var result RosterSyncResult
	if err := cmd.Validate(); err != nil {
		return result, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return result, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ResidentRepository()
	current, err := repo.ListInMailroom(ctx, cmd.MailroomID())
	if err != nil {
		return result, err
	}

	byStudentID := make(map[string]*resident.Resident, len(current))
	for _, r := range current {
		byStudentID[strings.ToLower(r.StudentID())] = r
	}

	listed := make(map[string]struct{}, len(cmd.Profiles()))
	for _, profile := range cmd.Profiles() {
		key := strings.ToLower(profile.StudentID)
		listed[key] = struct{}{}

		existing, ok := byStudentID[key]
		switch {
		case !ok:
			r, err := resident.NewResident(kernel.NewUUID(), cmd.MailroomID(), profile)
			if err != nil {
				return RosterSyncResult{}, err
			}
			if err = repo.Add(ctx, r); err != nil {
				return RosterSyncResult{}, err
			}
			result.Added++
		case existing.Status() == resident.StatusAdminAction:
			result.Unchanged++
		case !existing.IsActive():
			if err = existing.Reactivate(profile); err != nil {
				return RosterSyncResult{}, err
			}
			if err = repo.Update(ctx, existing); err != nil {
				return RosterSyncResult{}, err
			}
			result.Reactivated++
		case existing.ProfileDiffers(profile):
			if err = existing.Reactivate(profile); err != nil {
				return RosterSyncResult{}, err
			}
			if err = repo.Update(ctx, existing); err != nil {
				return RosterSyncResult{}, err
			}
			result.Updated++
		default:
			result.Unchanged++
		}
	}

	for key, r := range byStudentID {
		if _, ok := listed[key]; ok || !r.IsActive() {
			continue
		}
		r.RemoveInBulk()
		if err = repo.Update(ctx, r); err != nil {
			return RosterSyncResult{}, err
		}
		result.Removed++
	}

	if err = uow.Commit(ctx); err != nil {
		return RosterSyncResult{}, err
	}

	h.logger.InfoContext(ctx, "roster synced",
		"mailroom_id", cmd.MailroomID().String(),
		"added", result.Added,
		"updated", result.Updated,
		"reactivated", result.Reactivated,
		"removed", result.Removed)
	return result, nil
}
