package residentrepo

import (
	"context"
	"errors"

	"mailroom/internal/adapters/out/postgres/pgerr"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/resident"
	"mailroom/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormResidentRepository implements ports.ResidentRepository.
type GormResidentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormResidentRepository(db *gorm.DB, tracker aggregateTracker) *GormResidentRepository {
	return &GormResidentRepository{db: db, tracker: tracker}
}

func (r *GormResidentRepository) Add(ctx context.Context, aggregate *resident.Resident) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("studentId", aggregate.StudentID(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormResidentRepository) Update(ctx context.Context, aggregate *resident.Resident) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ResidentDTO{}).
		Where("id = ? AND mailroom_id = ?", dto.ID, dto.MailroomID).
		Select("first_name", "last_name", "student_id", "email", "status").
		Updates(&dto)
	if result.Error != nil {
		if pgerr.IsUniqueViolation(result.Error) {
			return errs.NewObjectAlreadyExistsErrorWithCause("studentId", aggregate.StudentID(), result.Error)
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("resident", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormResidentRepository) GetInMailroom(ctx context.Context, mailroomID, id kernel.UUID) (*resident.Resident, error) {
	if err := errors.Join(mailroomID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto ResidentDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND mailroom_id = ?", id.Bytes(), mailroomID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("resident", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormResidentRepository) FindByStudentID(
	ctx context.Context,
	mailroomID kernel.UUID,
	studentID string,
) (*resident.Resident, error) {
	if err := mailroomID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ResidentDTO
	err := r.db.WithContext(ctx).
		Where("mailroom_id = ? AND lower(student_id) = lower(?)", mailroomID.Bytes(), studentID).
		Limit(1).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}
	if len(dtos) == 0 {
		return nil, nil //nolint:nilnil // absence is not an error here
	}

	return toDomain(dtos[0])
}

func (r *GormResidentRepository) ListInMailroom(ctx context.Context, mailroomID kernel.UUID) ([]*resident.Resident, error) {
	if err := mailroomID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ResidentDTO
	err := r.db.WithContext(ctx).
		Where("mailroom_id = ?", mailroomID.Bytes()).
		Order("last_name, first_name, student_id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	residents := make([]*resident.Resident, 0, len(dtos))
	for _, dto := range dtos {
		res, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		residents = append(residents, res)
	}
	return residents, nil
}
