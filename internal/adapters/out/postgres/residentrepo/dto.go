// Package residentrepo persists residents.
package residentrepo

import (
	"mailroom/internal/adapters/out/postgres/mailroomrepo"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/resident"

	"github.com/google/uuid"
)

// ResidentDTO is a row of the residents table. Student ids are unique per
// mailroom regardless of case; the index is created by the schema migration.
type ResidentDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	MailroomID uuid.UUID `gorm:"type:uuid;not null;index"`
	FirstName  string    `gorm:"size:128;not null"`
	LastName   string    `gorm:"size:128;not null"`
	StudentID  string    `gorm:"size:128;not null"`
	Email      string    `gorm:"size:254;not null"`
	Status     string    `gorm:"size:24;not null"`

	Mailroom *mailroomrepo.MailroomDTO `gorm:"foreignKey:MailroomID;constraint:OnDelete:RESTRICT"`
}

func (ResidentDTO) TableName() string {
	return "residents"
}

func fromDomain(r *resident.Resident) ResidentDTO {
	p := r.Profile()
	return ResidentDTO{
		ID:         r.ID().Bytes(),
		MailroomID: r.MailroomID().Bytes(),
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		StudentID:  p.StudentID,
		Email:      p.Email,
		Status:     string(r.Status()),
	}
}

func toDomain(dto ResidentDTO) (*resident.Resident, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	mailroomID, err := kernel.UUIDFromBytes(dto.MailroomID[:])
	if err != nil {
		return nil, err
	}
	status, err := resident.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return resident.RestoreResident(id, mailroomID, resident.Profile{
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		StudentID: dto.StudentID,
		Email:     dto.Email,
	}, status)
}
