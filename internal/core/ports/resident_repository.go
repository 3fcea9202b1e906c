package ports

import (
	"context"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/resident"
)

type ResidentRepository interface {
	// Add inserts a resident. A duplicate student id within the mailroom is
	// reported as errs.ErrObjectAlreadyExists.
	Add(ctx context.Context, aggregate *resident.Resident) error

	Update(ctx context.Context, aggregate *resident.Resident) error

	// GetInMailroom returns the resident only when it belongs to mailroomID,
	// otherwise errs.ErrObjectNotFound.
	GetInMailroom(ctx context.Context, mailroomID, id kernel.UUID) (*resident.Resident, error)

	// FindByStudentID returns nil without error when nobody in the mailroom
	// has that student id.
	FindByStudentID(ctx context.Context, mailroomID kernel.UUID, studentID string) (*resident.Resident, error)

	// ListInMailroom returns every resident of the mailroom regardless of status.
	ListInMailroom(ctx context.Context, mailroomID kernel.UUID) ([]*resident.Resident, error)
}
