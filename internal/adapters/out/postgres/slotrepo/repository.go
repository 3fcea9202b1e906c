package slotrepo

import (
	"context"
	"errors"
	"time"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/core/domain/model/slot"

	"gorm.io/gorm"
)

const insertBatchSize = 500

// GormSlotRepository implements ports.SlotRepository.
type GormSlotRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGormSlotRepository(db *gorm.DB) *GormSlotRepository {
	return &GormSlotRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (r *GormSlotRepository) AddPool(ctx context.Context, slots []*slot.Slot) error {
	if len(slots) == 0 {
		return nil
	}

	dtos := make([]SlotDTO, 0, len(slots))
	for _, s := range slots {
		if err := s.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(s))
	}
	return r.db.WithContext(ctx).CreateInBatches(&dtos, insertBatchSize).Error
}

// AllocateNext takes the lowest available number. Rows locked by a concurrent
// allocation are skipped rather than waited on, so two callers never pick the
// same row and neither blocks the other.
func (r *GormSlotRepository) AllocateNext(ctx context.Context, mailroomID kernel.UUID) (kernel.PackageNumber, error) {
	if err := mailroomID.Validate(); err != nil {
		return kernel.PackageNumber{}, err
	}

	var numbers []int
	err := r.db.WithContext(ctx).Raw(`
		UPDATE package_number_slots
		SET is_available = false, last_used_at = ?
		WHERE mailroom_id = ? AND package_number = (
			SELECT package_number
			FROM package_number_slots
			WHERE mailroom_id = ? AND is_available
			ORDER BY package_number
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING package_number
	`, r.now(), mailroomID.Bytes(), mailroomID.Bytes()).Scan(&numbers).Error
	if err != nil {
		return kernel.PackageNumber{}, err
	}
	if len(numbers) == 0 {
		return kernel.PackageNumber{}, slot.ErrQueueExhausted
	}

	return kernel.NewPackageNumber(numbers[0])
}

// Release returns the number to the pool. Postgres counts matched rows, so a
// slot that is already available still reports one affected row.
func (r *GormSlotRepository) Release(ctx context.Context, mailroomID kernel.UUID, number kernel.PackageNumber) error {
	if err := errors.Join(mailroomID.Validate(), number.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&SlotDTO{}).
		Where("mailroom_id = ? AND package_number = ?", mailroomID.Bytes(), number.Int()).
		Updates(map[string]any{"is_available": true, "last_used_at": r.now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return slot.ErrSlotNotFound
	}
	return nil
}

const leakedCondition = `
	NOT s.is_available
	AND (s.last_used_at IS NULL OR s.last_used_at < ?)
	AND NOT EXISTS (
		SELECT 1 FROM packages p
		WHERE p.mailroom_id = s.mailroom_id
			AND p.package_number = s.package_number
			AND p.status = ?
	)`

func (r *GormSlotRepository) ListLeaked(ctx context.Context, cutoff time.Time, limit int) ([]*slot.Slot, error) {
	var dtos []SlotDTO
	err := r.db.WithContext(ctx).Raw(`
		SELECT s.mailroom_id, s.package_number, s.is_available, s.last_used_at
		FROM package_number_slots s
		WHERE `+leakedCondition+`
		ORDER BY s.last_used_at NULLS FIRST, s.mailroom_id, s.package_number
		LIMIT ?
	`, cutoff, parcel.Waiting.String(), limit).Scan(&dtos).Error
	if err != nil {
		return nil, err
	}

	slots := make([]*slot.Slot, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return slots, nil
}

// ReleaseIfLeaked re-checks the leak conditions in the same statement that
// releases the slot, so a registration that completed after ListLeaked keeps
// its number.
func (r *GormSlotRepository) ReleaseIfLeaked(ctx context.Context, s *slot.Slot, cutoff time.Time) (bool, error) {
	if err := s.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Exec(`
		UPDATE package_number_slots AS s
		SET is_available = true, last_used_at = ?
		WHERE s.mailroom_id = ? AND s.package_number = ? AND `+leakedCondition,
		r.now(), s.MailroomID().Bytes(), s.Number().Int(), cutoff, parcel.Waiting.String())
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
