package mailroomrepo

import (
	"context"
	"errors"

	"mailroom/internal/adapters/out/postgres/pgerr"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/mailroom"
	"mailroom/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormMailroomRepository implements ports.MailroomRepository.
type GormMailroomRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormMailroomRepository(db *gorm.DB, tracker aggregateTracker) *GormMailroomRepository {
	return &GormMailroomRepository{db: db, tracker: tracker}
}

// Add inserts a mailroom. A taken (organization, slug) pair is reported as
// errs.ErrObjectAlreadyExists.
func (r *GormMailroomRepository) Add(ctx context.Context, aggregate *mailroom.Mailroom) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("slug", aggregate.Slug(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update overwrites every column, so cleared settings are persisted too.
func (r *GormMailroomRepository) Update(ctx context.Context, aggregate *mailroom.Mailroom) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&MailroomDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		if pgerr.IsUniqueViolation(result.Error) {
			return errs.NewObjectAlreadyExistsErrorWithCause("slug", aggregate.Slug(), result.Error)
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("mailroom", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormMailroomRepository) Get(ctx context.Context, id kernel.UUID) (*mailroom.Mailroom, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MailroomDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("mailroom", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
