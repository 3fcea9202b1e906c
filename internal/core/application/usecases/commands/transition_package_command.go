package commands

import (
	"errors"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

var ErrTransitionPackageCommandIsNotConstructed = errors.New(
	"TransitionPackageCommand must be created via NewTransitionPackageCommand constructor",
)

// TransitionPackageCommand moves a WAITING package of a mailroom to a terminal status.
type TransitionPackageCommand struct { //nolint:recvcheck //using for validation
	mailroomID    kernel.UUID
	packageID     kernel.UUID
	target        parcel.Status
	actingStaffID kernel.UUID

	guard guard.ConstructorGuard
}

// NewTransitionPackageCommand rejects WAITING as a target up front; the rest of
// the transition table is enforced by the package itself.
func NewTransitionPackageCommand(
	mailroomID, packageID kernel.UUID,
	target parcel.Status,
	actingStaffID kernel.UUID,
) (TransitionPackageCommand, error) {
	var targetErr error
	if err := target.Validate(); err != nil {
		targetErr = err
	} else if !target.IsTerminal() {
		targetErr = errs.NewValueIsInvalidErrorWithCause("status", errors.New("target status must be terminal"))
	}

	if err := errors.Join(
		mailroomID.Validate(),
		packageID.Validate(),
		actingStaffID.Validate(),
		targetErr,
	); err != nil {
		return TransitionPackageCommand{}, err
	}

	return TransitionPackageCommand{
		mailroomID:    mailroomID,
		packageID:     packageID,
		target:        target,
		actingStaffID: actingStaffID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c TransitionPackageCommand) Validate() error {
	return c.guard.Validate(ErrTransitionPackageCommandIsNotConstructed)
}

func (c TransitionPackageCommand) MailroomID() kernel.UUID    { return c.mailroomID }
func (c TransitionPackageCommand) PackageID() kernel.UUID     { return c.packageID }
func (c TransitionPackageCommand) Target() parcel.Status      { return c.target }
func (c TransitionPackageCommand) ActingStaffID() kernel.UUID { return c.actingStaffID }
