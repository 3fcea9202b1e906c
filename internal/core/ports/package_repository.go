package ports

import (
	"context"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/parcel"
)

// PackageRepository persists package records. Packages are never deleted.
type PackageRepository interface {
	// Add inserts a WAITING package. A second WAITING package with the same
	// (mailroom, number) is reported as errs.ErrObjectAlreadyExists.
	Add(ctx context.Context, aggregate *parcel.Package) error

	// GetInMailroom returns the package only when it belongs to mailroomID,
	// otherwise errs.ErrObjectNotFound.
	GetInMailroom(ctx context.Context, mailroomID, id kernel.UUID) (*parcel.Package, error)

	// SaveTransition writes the package's terminal status and stamps only if
	// the stored row is still WAITING. When another writer got there first it
	// returns parcel.ErrInvalidTransition and changes nothing.
	SaveTransition(ctx context.Context, aggregate *parcel.Package) error
}
