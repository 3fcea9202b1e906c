package commands

import (
	"errors"
	"time"

	"mailroom/internal/core/domain/model/invitation"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/guard"
)

// timeZero is a fixed reference instant for validation-only constructions.
var timeZero = time.Unix(0, 0).UTC()

var ErrCreateInvitationCommandIsNotConstructed = errors.New(
	"CreateInvitationCommand must be created via NewCreateInvitationCommand constructor",
)

type CreateInvitationCommand struct { //nolint:recvcheck //using for validation
	invitationID   kernel.UUID
	email          string
	role           invitation.Role
	organizationID kernel.UUID
	mailroomID     *kernel.UUID
	invitedBy      kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateInvitationCommand validates the request by building a throwaway
// invitation, so role and mailroom rules live in one place.
func NewCreateInvitationCommand(
	invitationID kernel.UUID,
	email string,
	role invitation.Role,
	organizationID kernel.UUID,
	mailroomID *kernel.UUID,
	invitedBy kernel.UUID,
) (CreateInvitationCommand, error) {
	draft, err := invitation.NewInvitation(invitationID, email, role, organizationID, mailroomID, invitedBy, timeZero)
	if err != nil {
		return CreateInvitationCommand{}, err
	}

	return CreateInvitationCommand{
		invitationID:   invitationID,
		email:          draft.Email(),
		role:           role,
		organizationID: organizationID,
		mailroomID:     draft.MailroomID(),
		invitedBy:      invitedBy,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c CreateInvitationCommand) Validate() error {
	return c.guard.Validate(ErrCreateInvitationCommandIsNotConstructed)
}

func (c CreateInvitationCommand) InvitationID() kernel.UUID   { return c.invitationID }
func (c CreateInvitationCommand) Email() string               { return c.email }
func (c CreateInvitationCommand) Role() invitation.Role       { return c.role }
func (c CreateInvitationCommand) OrganizationID() kernel.UUID { return c.organizationID }
func (c CreateInvitationCommand) MailroomID() *kernel.UUID    { return c.mailroomID }
func (c CreateInvitationCommand) InvitedBy() kernel.UUID      { return c.invitedBy }
