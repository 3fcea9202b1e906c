package commands

import (
	"errors"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/resident"
	"mailroom/internal/pkg/guard"
)

var ErrAddResidentCommandIsNotConstructed = errors.New(
	"AddResidentCommand must be created via NewAddResidentCommand constructor",
)

// AddResidentCommand adds one resident by hand, outside a roster upload.
type AddResidentCommand struct { //nolint:recvcheck //using for validation
	residentID kernel.UUID
	mailroomID kernel.UUID
	profile    resident.Profile

	guard guard.ConstructorGuard
}

// NewAddResidentCommand validates the profile by building a throwaway resident.
func NewAddResidentCommand(residentID, mailroomID kernel.UUID, profile resident.Profile) (AddResidentCommand, error) {
	r, err := resident.NewResident(residentID, mailroomID, profile)
	if err != nil {
		return AddResidentCommand{}, err
	}

	return AddResidentCommand{
		residentID: residentID,
		mailroomID: mailroomID,
		profile:    r.Profile(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AddResidentCommand) Validate() error {
	return c.guard.Validate(ErrAddResidentCommandIsNotConstructed)
}

func (c AddResidentCommand) ResidentID() kernel.UUID    { return c.residentID }
func (c AddResidentCommand) MailroomID() kernel.UUID    { return c.mailroomID }
func (c AddResidentCommand) Profile() resident.Profile { return c.profile }
