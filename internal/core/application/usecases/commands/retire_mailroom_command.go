package commands

import (
	"errors"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/guard"
)

var ErrRetireMailroomCommandIsNotConstructed = errors.New(
	"RetireMailroomCommand must be created via NewRetireMailroomCommand constructor",
)

type RetireMailroomCommand struct { //nolint:recvcheck //using for validation
	mailroomID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRetireMailroomCommand(mailroomID kernel.UUID) (RetireMailroomCommand, error) {
	if err := mailroomID.Validate(); err != nil {
		return RetireMailroomCommand{}, err
	}

	return RetireMailroomCommand{
		mailroomID: mailroomID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RetireMailroomCommand) Validate() error {
	return c.guard.Validate(ErrRetireMailroomCommandIsNotConstructed)
}

func (c RetireMailroomCommand) MailroomID() kernel.UUID { return c.mailroomID }
