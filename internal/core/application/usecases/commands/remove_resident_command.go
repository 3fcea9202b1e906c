package commands

import (
	"errors"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/guard"
)

var ErrRemoveResidentCommandIsNotConstructed = errors.New(
	"RemoveResidentCommand must be created via NewRemoveResidentCommand constructor",
)

type RemoveResidentCommand struct { //nolint:recvcheck //using for validation
	mailroomID kernel.UUID
	residentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveResidentCommand(mailroomID, residentID kernel.UUID) (RemoveResidentCommand, error) {
	if err := errors.Join(mailroomID.Validate(), residentID.Validate()); err != nil {
		return RemoveResidentCommand{}, err
	}
	return RemoveResidentCommand{
		mailroomID: mailroomID,
		residentID: residentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveResidentCommand) Validate() error {
	return c.guard.Validate(ErrRemoveResidentCommandIsNotConstructed)
}

func (c RemoveResidentCommand) MailroomID() kernel.UUID { return c.mailroomID }
func (c RemoveResidentCommand) ResidentID() kernel.UUID { return c.residentID }
