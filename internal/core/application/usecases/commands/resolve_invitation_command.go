package commands

import (
	"errors"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/guard"
)

var ErrResolveInvitationCommandIsNotConstructed = errors.New(
	"ResolveInvitationCommand must be created via NewResolveInvitationCommand constructor",
)

// ResolveInvitationCommand marks an invitation used once its invitee registered.
type ResolveInvitationCommand struct { //nolint:recvcheck //using for validation
	invitationID kernel.UUID

	guard guard.ConstructorGuard
}

func NewResolveInvitationCommand(invitationID kernel.UUID) (ResolveInvitationCommand, error) {
	if err := invitationID.Validate(); err != nil {
		return ResolveInvitationCommand{}, err
	}
	return ResolveInvitationCommand{invitationID: invitationID, guard: guard.NewConstructorGuard()}, nil
}

func (c ResolveInvitationCommand) Validate() error {
	return c.guard.Validate(ErrResolveInvitationCommandIsNotConstructed)
}

func (c ResolveInvitationCommand) InvitationID() kernel.UUID { return c.invitationID }
