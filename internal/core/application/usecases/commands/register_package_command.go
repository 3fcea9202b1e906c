package commands

import (
	"errors"
	"strings"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

var ErrRegisterPackageCommandIsNotConstructed = errors.New(
	"RegisterPackageCommand must be created via NewRegisterPackageCommand constructor",
)

// RegisterPackageCommand records an incoming package for a resident.
//
// Example:
//
//	cmd, err := NewRegisterPackageCommand(kernel.NewUUID(), mailroomID, residentID, staffID, "UPS")
//	pkg, err := handler.Handle(ctx, cmd)
//	// pkg.Number() is the number staff write on the box
type RegisterPackageCommand struct { //nolint:recvcheck //using for validation
	packageID  kernel.UUID
	mailroomID kernel.UUID
	residentID kernel.UUID
	staffID    kernel.UUID
	provider   string

	guard guard.ConstructorGuard
}

func NewRegisterPackageCommand(
	packageID, mailroomID, residentID, staffID kernel.UUID,
	provider string,
) (RegisterPackageCommand, error) {
	cmd := RegisterPackageCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		packageID.Validate(),
		mailroomID.Validate(),
		residentID.Validate(),
		staffID.Validate(),
		cmd.setProvider(provider),
	); err != nil {
		return RegisterPackageCommand{}, err
	}

	cmd.packageID = packageID
	cmd.mailroomID = mailroomID
	cmd.residentID = residentID
	cmd.staffID = staffID
	return cmd, nil
}

func (c RegisterPackageCommand) Validate() error {
	return c.guard.Validate(ErrRegisterPackageCommandIsNotConstructed)
}

func (c RegisterPackageCommand) PackageID() kernel.UUID  { return c.packageID }
func (c RegisterPackageCommand) MailroomID() kernel.UUID { return c.mailroomID }
func (c RegisterPackageCommand) ResidentID() kernel.UUID { return c.residentID }
func (c RegisterPackageCommand) StaffID() kernel.UUID    { return c.staffID }
func (c RegisterPackageCommand) Provider() string        { return c.provider }

func (c *RegisterPackageCommand) setProvider(provider string) error {
	provider = strings.TrimSpace(provider)
	if provider == "" {
		return errs.NewValueIsRequiredError("provider")
	}
	c.provider = provider
	return nil
}
