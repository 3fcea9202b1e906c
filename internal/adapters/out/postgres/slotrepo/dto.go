// Package slotrepo persists the package number pool. All availability flips
// are single conditional statements so concurrent callers never observe or
// produce a half-updated slot.
package slotrepo

import (
	"time"

	"mailroom/internal/adapters/out/postgres/mailroomrepo"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/slot"

	"github.com/google/uuid"
)

// SlotDTO is a row of package_number_slots, keyed by (mailroom_id, package_number).
type SlotDTO struct {
	MailroomID    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	PackageNumber int        `gorm:"primaryKey;autoIncrement:false"`
	IsAvailable   bool       `gorm:"not null"`
	LastUsedAt    *time.Time `gorm:"index"`

	Mailroom *mailroomrepo.MailroomDTO `gorm:"foreignKey:MailroomID;constraint:OnDelete:RESTRICT"`
}

func (SlotDTO) TableName() string {
	return "package_number_slots"
}

func fromDomain(s *slot.Slot) SlotDTO {
	return SlotDTO{
		MailroomID:    s.MailroomID().Bytes(),
		PackageNumber: s.Number().Int(),
		IsAvailable:   s.IsAvailable(),
		LastUsedAt:    s.LastUsedAt(),
	}
}

func toDomain(dto SlotDTO) (*slot.Slot, error) {
	mailroomID, err := kernel.UUIDFromBytes(dto.MailroomID[:])
	if err != nil {
		return nil, err
	}
	number, err := kernel.NewPackageNumber(dto.PackageNumber)
	if err != nil {
		return nil, err
	}
	return slot.RestoreSlot(mailroomID, number, dto.IsAvailable, dto.LastUsedAt)
}
