package commands

import (
	"context"

	"mailroom/internal/core/domain/model/resident"
	"mailroom/internal/pkg/errs"
)

// AddResidentCommandHandler inserts a resident, or re-activates a removed one
// that carries the same student id. An active resident with that student id
// is a conflict.
type AddResidentCommandHandler struct {
	uowFactory ResidentUoWFactory
}

func NewAddResidentCommandHandler(uowFactory ResidentUoWFactory) AddResidentCommandHandler {
	return AddResidentCommandHandler{uowFactory: uowFactory}
}

func (h *AddResidentCommandHandler) Handle(ctx context.Context, cmd AddResidentCommand) (*resident.Resident, error) {
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

	repo := uow.ResidentRepository()
	existing, err := repo.FindByStudentID(ctx, cmd.MailroomID(), cmd.Profile().StudentID)
	if err != nil {
		return nil, err
	}

	var r *resident.Resident
	switch {
	case existing != nil && existing.IsActive():
		return nil, errs.NewObjectAlreadyExistsError("studentId", cmd.Profile().StudentID)
	case existing != nil:
		if err = existing.Reactivate(cmd.Profile()); err != nil {
			return nil, err
		}
		if err = repo.Update(ctx, existing); err != nil {
			return nil, err
		}
		r = existing
	default:
		if r, err = resident.NewResident(cmd.ResidentID(), cmd.MailroomID(), cmd.Profile()); err != nil {
			return nil, err
		}
		if err = repo.Add(ctx, r); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return r, nil
}
