// Package mailroomrepo persists the Mailroom aggregate.
package mailroomrepo

import (
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/mailroom"

	"github.com/google/uuid"
)

// MailroomDTO is the row of the mailrooms table. Hours are stored as jsonb.
type MailroomDTO struct {
	ID                  uuid.UUID         `gorm:"type:uuid;primaryKey"`
	OrganizationID      uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:ux_mailrooms_org_slug,priority:1"`
	Slug                string            `gorm:"size:64;not null;uniqueIndex:ux_mailrooms_org_slug,priority:2"`
	Name                string            `gorm:"size:128;not null"`
	PoolSize            int               `gorm:"not null"`
	Status              string            `gorm:"size:16;not null"`
	PickupOption        string            `gorm:"size:16;not null"`
	MailroomHours       map[string]string `gorm:"type:jsonb;serializer:json"`
	EmailAdditionalText string            `gorm:"type:text"`
	AdminEmail          string            `gorm:"size:254"`
}

func (MailroomDTO) TableName() string {
	return "mailrooms"
}

func fromDomain(m *mailroom.Mailroom) MailroomDTO {
	s := m.Settings()
	return MailroomDTO{
		ID:                  m.ID().Bytes(),
		OrganizationID:      m.OrganizationID().Bytes(),
		Slug:                m.Slug(),
		Name:                m.Name(),
		PoolSize:            m.PoolSize(),
		Status:              string(m.Status()),
		PickupOption:        string(s.PickupOption),
		MailroomHours:       s.Hours,
		EmailAdditionalText: s.EmailAdditionalText,
		AdminEmail:          s.AdminEmail,
	}
}

func toDomain(dto MailroomDTO) (*mailroom.Mailroom, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orgID, err := kernel.UUIDFromBytes(dto.OrganizationID[:])
	if err != nil {
		return nil, err
	}

	return mailroom.RestoreMailroom(id, orgID, dto.Slug, dto.Name, dto.PoolSize, mailroom.Status(dto.Status),
		mailroom.Settings{
			PickupOption:        mailroom.PickupOption(dto.PickupOption),
			Hours:               dto.MailroomHours,
			EmailAdditionalText: dto.EmailAdditionalText,
			AdminEmail:          dto.AdminEmail,
		})
}
