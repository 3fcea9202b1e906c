package packagerepo

import (
	"context"
	"errors"
	"fmt"

	"mailroom/internal/adapters/out/postgres/pgerr"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/core/domain/model/slot"
	"mailroom/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormPackageRepository implements ports.PackageRepository.
type GormPackageRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormPackageRepository(db *gorm.DB, tracker aggregateTracker) *GormPackageRepository {
	return &GormPackageRepository{db: db, tracker: tracker}
}

// waitingNumberIndex is the partial unique index over WAITING package numbers.
const waitingNumberIndex = "ux_packages_waiting_number"

// Add inserts a package. The partial unique index on WAITING packages turns
// a double-issued number into slot.ErrNumberInUse, which also matches
// errs.ErrObjectAlreadyExists.
func (r *GormPackageRepository) Add(ctx context.Context, aggregate *parcel.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if !pgerr.IsUniqueViolation(err) {
			return err
		}
		if pgerr.ConstraintName(err) == waitingNumberIndex {
			return fmt.Errorf("%w: %w", slot.ErrNumberInUse,
				errs.NewObjectAlreadyExistsErrorWithCause("package number", aggregate.Number().Int(), err))
		}
		return errs.NewObjectAlreadyExistsErrorWithCause("package", aggregate.ID().String(), err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormPackageRepository) GetInMailroom(ctx context.Context, mailroomID, id kernel.UUID) (*parcel.Package, error) {
	if err := errors.Join(mailroomID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto PackageDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND mailroom_id = ?", id.Bytes(), mailroomID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("package", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// SaveTransition is a compare-and-swap on status = WAITING.
func (r *GormPackageRepository) SaveTransition(ctx context.Context, aggregate *parcel.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !aggregate.Status().IsTerminal() {
		return fmt.Errorf("%w: %s is not a terminal status", parcel.ErrInvalidTransition, aggregate.Status())
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PackageDTO{}).
		Where("id = ? AND mailroom_id = ? AND status = ?", dto.ID, dto.MailroomID, parcel.Waiting.String()).
		Updates(map[string]any{
			"status":              dto.Status,
			"retrieved_timestamp": dto.RetrievedTimestamp,
			"pickup_staff_id":     dto.PickupStaffID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: package %s is no longer waiting", parcel.ErrInvalidTransition, aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
