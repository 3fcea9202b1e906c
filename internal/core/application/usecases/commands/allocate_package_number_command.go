package commands

import (
	"errors"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/guard"
)

var ErrAllocatePackageNumberCommandIsNotConstructed = errors.New(
	"AllocatePackageNumberCommand must be created via NewAllocatePackageNumberCommand constructor",
)

// AllocatePackageNumberCommand takes the next free number of a mailroom's pool.
type AllocatePackageNumberCommand struct { //nolint:recvcheck //using for validation
	mailroomID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAllocatePackageNumberCommand(mailroomID kernel.UUID) (AllocatePackageNumberCommand, error) {
	if err := mailroomID.Validate(); err != nil {
		return AllocatePackageNumberCommand{}, err
	}
	return AllocatePackageNumberCommand{
		mailroomID: mailroomID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AllocatePackageNumberCommand) Validate() error {
	return c.guard.Validate(ErrAllocatePackageNumberCommandIsNotConstructed)
}

func (c AllocatePackageNumberCommand) MailroomID() kernel.UUID {
	return c.mailroomID
}
