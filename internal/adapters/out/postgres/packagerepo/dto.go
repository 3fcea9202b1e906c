// Package packagerepo persists package records.
package packagerepo

import (
	"time"

	"mailroom/internal/adapters/out/postgres/mailroomrepo"
	"mailroom/internal/adapters/out/postgres/residentrepo"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// PackageDTO is a row of the packages table. Status holds the canonical
// upper-case name; the check constraint keeps free text out.
type PackageDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	MailroomID         uuid.UUID  `gorm:"type:uuid;not null;index:idx_packages_mailroom_status,priority:1"`
	ResidentID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	StaffID            uuid.UUID  `gorm:"type:uuid;not null"`
	PackageNumber      int        `gorm:"not null"`
	Provider           string     `gorm:"size:64;not null"`
	Status             string     `gorm:"size:16;not null;index:idx_packages_mailroom_status,priority:2;check:chk_packages_status,status IN ('WAITING','RETRIEVED','STAFF_RESOLVED','STAFF_REMOVED')"`
	CreatedAt          time.Time  `gorm:"not null"`
	RetrievedTimestamp *time.Time
	PickupStaffID      *uuid.UUID `gorm:"type:uuid"`

	Mailroom *mailroomrepo.MailroomDTO `gorm:"foreignKey:MailroomID;constraint:OnDelete:RESTRICT"`
	Resident *residentrepo.ResidentDTO `gorm:"foreignKey:ResidentID;constraint:OnDelete:RESTRICT"`
}

func (PackageDTO) TableName() string {
	return "packages"
}

func fromDomain(p *parcel.Package) PackageDTO {
	var pickupStaffID *uuid.UUID
	if id := p.PickupStaffID(); id != nil {
		raw := id.Bytes()
		pickupStaffID = &raw
	}

	return PackageDTO{
		ID:                 p.ID().Bytes(),
		MailroomID:         p.MailroomID().Bytes(),
		ResidentID:         p.ResidentID().Bytes(),
		StaffID:            p.StaffID().Bytes(),
		PackageNumber:      p.Number().Int(),
		Provider:           p.Provider(),
		Status:             p.Status().String(),
		CreatedAt:          p.CreatedAt(),
		RetrievedTimestamp: p.RetrievedAt(),
		PickupStaffID:      pickupStaffID,
	}
}

func toDomain(dto PackageDTO) (*parcel.Package, error) {
	ids := make([]kernel.UUID, 0, 4)
	for _, raw := range []uuid.UUID{dto.ID, dto.MailroomID, dto.ResidentID, dto.StaffID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	var pickupStaffID *kernel.UUID
	if dto.PickupStaffID != nil {
		id, err := kernel.UUIDFromBytes(dto.PickupStaffID[:])
		if err != nil {
			return nil, err
		}
		pickupStaffID = &id
	}

	number, err := kernel.NewPackageNumber(dto.PackageNumber)
	if err != nil {
		return nil, err
	}
	status, err := parcel.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return parcel.RestorePackage(ids[0], ids[1], ids[2], ids[3], number, dto.Provider, status,
		dto.CreatedAt, dto.RetrievedTimestamp, pickupStaffID)
}
