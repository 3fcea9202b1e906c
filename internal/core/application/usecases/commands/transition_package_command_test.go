package commands_test

import (
	"testing"

	"mailroom/internal/core/application/usecases/commands"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransitionPackageCommand(t *testing.T) {
	for _, target := range []parcel.Status{parcel.Retrieved, parcel.StaffResolved, parcel.StaffRemoved} {
		cmd, err := commands.NewTransitionPackageCommand(kernel.NewUUID(), kernel.NewUUID(), target, kernel.NewUUID())
		require.NoError(t, err)
		assert.Equal(t, target, cmd.Target())
	}
}

func TestNewTransitionPackageCommand_RejectsNonTerminalTarget(t *testing.T) {
	_, err := commands.NewTransitionPackageCommand(kernel.NewUUID(), kernel.NewUUID(), parcel.Waiting, kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewTransitionPackageCommand(kernel.NewUUID(), kernel.NewUUID(), parcel.Unknown, kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewTransitionPackageCommand_RequiresActingStaff(t *testing.T) {
	_, err := commands.NewTransitionPackageCommand(kernel.NewUUID(), kernel.NewUUID(), parcel.Retrieved, kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
