package commands

import (
	"errors"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/guard"
)

var ErrReleasePackageNumberCommandIsNotConstructed = errors.New(
	"ReleasePackageNumberCommand must be created via NewReleasePackageNumberCommand constructor",
)

// ReleasePackageNumberCommand returns a number to its mailroom's pool.
type ReleasePackageNumberCommand struct { //nolint:recvcheck //using for validation
	mailroomID kernel.UUID
	number     kernel.PackageNumber

	guard guard.ConstructorGuard
}

func NewReleasePackageNumberCommand(mailroomID kernel.UUID, number int) (ReleasePackageNumberCommand, error) {
	packageNumber, numberErr := kernel.NewPackageNumber(number)
	if err := errors.Join(mailroomID.Validate(), numberErr); err != nil {
		return ReleasePackageNumberCommand{}, err
	}

	return ReleasePackageNumberCommand{
		mailroomID: mailroomID,
		number:     packageNumber,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ReleasePackageNumberCommand) Validate() error {
	return c.guard.Validate(ErrReleasePackageNumberCommandIsNotConstructed)
}

func (c ReleasePackageNumberCommand) MailroomID() kernel.UUID      { return c.mailroomID }
func (c ReleasePackageNumberCommand) Number() kernel.PackageNumber { return c.number }
