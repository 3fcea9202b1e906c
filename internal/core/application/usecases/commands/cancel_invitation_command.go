package commands

import (
	"errors"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/guard"
)

var ErrCancelInvitationCommandIsNotConstructed = errors.New(
	"CancelInvitationCommand must be created via NewCancelInvitationCommand constructor",
)

// CancelInvitationCommand withdraws a pending invitation.
type CancelInvitationCommand struct { //nolint:recvcheck //using for validation
	invitationID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelInvitationCommand(invitationID kernel.UUID) (CancelInvitationCommand, error) {
	if err := invitationID.Validate(); err != nil {
		return CancelInvitationCommand{}, err
	}
	return CancelInvitationCommand{invitationID: invitationID, guard: guard.NewConstructorGuard()}, nil
}

func (c CancelInvitationCommand) Validate() error {
	return c.guard.Validate(ErrCancelInvitationCommandIsNotConstructed)
}

func (c CancelInvitationCommand) InvitationID() kernel.UUID { return c.invitationID }
