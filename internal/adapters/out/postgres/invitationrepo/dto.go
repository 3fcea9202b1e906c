// Package invitationrepo persists user invitations.
package invitationrepo

import (
	"time"

	"mailroom/internal/adapters/out/postgres/mailroomrepo"
	"mailroom/internal/core/domain/model/invitation"
	"mailroom/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// InvitationDTO is a row of the invitations table.
type InvitationDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email          string     `gorm:"size:254;not null;index:idx_invitations_org_email,priority:2"`
	Role           string     `gorm:"size:16;not null"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;not null;index:idx_invitations_org_email,priority:1"`
	MailroomID     *uuid.UUID `gorm:"type:uuid"`
	InvitedBy      uuid.UUID  `gorm:"type:uuid;not null"`
	CreatedAt      time.Time  `gorm:"not null"`
	ExpiresAt      time.Time  `gorm:"not null;index:idx_invitations_status_expiry,priority:2"`
	Used           bool       `gorm:"not null"`
	Status         string     `gorm:"size:16;not null;index:idx_invitations_status_expiry,priority:1"`

	Mailroom *mailroomrepo.MailroomDTO `gorm:"foreignKey:MailroomID;constraint:OnDelete:RESTRICT"`
}

func (InvitationDTO) TableName() string {
	return "invitations"
}

func fromDomain(inv *invitation.Invitation) InvitationDTO {
	var mailroomID *uuid.UUID
	if id := inv.MailroomID(); id != nil {
		raw := id.Bytes()
		mailroomID = &raw
	}

	return InvitationDTO{
		ID:             inv.ID().Bytes(),
		Email:          inv.Email(),
		Role:           string(inv.Role()),
		OrganizationID: inv.OrganizationID().Bytes(),
		MailroomID:     mailroomID,
		InvitedBy:      inv.InvitedBy().Bytes(),
		CreatedAt:      inv.CreatedAt(),
		ExpiresAt:      inv.ExpiresAt(),
		Used:           inv.Used(),
		Status:         string(inv.Status()),
	}
}

func toDomain(dto InvitationDTO) (*invitation.Invitation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orgID, err := kernel.UUIDFromBytes(dto.OrganizationID[:])
	if err != nil {
		return nil, err
	}
	invitedBy, err := kernel.UUIDFromBytes(dto.InvitedBy[:])
	if err != nil {
		return nil, err
	}

	var mailroomID *kernel.UUID
	if dto.MailroomID != nil {
		mID, mErr := kernel.UUIDFromBytes(dto.MailroomID[:])
		if mErr != nil {
			return nil, mErr
		}
		mailroomID = &mID
	}

	return invitation.RestoreInvitation(id, dto.Email, invitation.Role(dto.Role), orgID, mailroomID, invitedBy,
		dto.CreatedAt, dto.ExpiresAt, dto.Used, invitation.Status(dto.Status))
}
