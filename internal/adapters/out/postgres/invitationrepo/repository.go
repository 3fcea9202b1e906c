package invitationrepo

import (
	"context"
	"errors"
	"time"

	"mailroom/internal/adapters/out/postgres/pgerr"
	"mailroom/internal/core/domain/model/invitation"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormInvitationRepository implements ports.InvitationRepository.
type GormInvitationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormInvitationRepository(db *gorm.DB, tracker aggregateTracker) *GormInvitationRepository {
	return &GormInvitationRepository{db: db, tracker: tracker}
}

// Add stores a new invitation. A lapsed PENDING row for the same email that the
// expiry job has not reached yet is failed first, since only one PENDING row
// per email and organization is allowed.
func (r *GormInvitationRepository) Add(ctx context.Context, aggregate *invitation.Invitation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Model(&InvitationDTO{}).
		Where("organization_id = ? AND lower(email) = lower(?) AND status = ? AND expires_at <= ?",
			dto.OrganizationID, dto.Email, string(invitation.StatusPending), dto.CreatedAt).
		Update("status", string(invitation.StatusFailed)).Error
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("invitation", aggregate.Email(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists the lifecycle fields; everything else is immutable.
func (r *GormInvitationRepository) Update(ctx context.Context, aggregate *invitation.Invitation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&InvitationDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{"status": dto.Status, "used": dto.Used})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("invitation", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormInvitationRepository) Get(ctx context.Context, id kernel.UUID) (*invitation.Invitation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto InvitationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("invitation", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormInvitationRepository) HasPending(
	ctx context.Context,
	email string,
	organizationID kernel.UUID,
	now time.Time,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&InvitationDTO{}).
		Where("organization_id = ? AND email = lower(?) AND status = ? AND expires_at > ?",
			organizationID.Bytes(), email, string(invitation.StatusPending), now).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormInvitationRepository) ListExpiredPending(
	ctx context.Context,
	now time.Time,
	limit int,
) ([]*invitation.Invitation, error) {
	var dtos []InvitationDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND expires_at <= ?", string(invitation.StatusPending), now).
		Order("expires_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	invitations := make([]*invitation.Invitation, 0, len(dtos))
	for _, dto := range dtos {
		inv, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		invitations = append(invitations, inv)
	}
	return invitations, nil
}
