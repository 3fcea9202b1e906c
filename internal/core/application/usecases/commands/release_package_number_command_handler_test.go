package commands_test

import (
	"testing"

	"mailroom/internal/core/application/usecases/commands"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/slot"
	"mailroom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReleasePackageNumberCommand(t *testing.T) {
	mailroomID := kernel.NewUUID()

	cmd, err := commands.NewReleasePackageNumberCommand(mailroomID, 47)
	require.NoError(t, err)
	assert.Equal(t, 47, cmd.Number().Int())
	assert.Equal(t, mailroomID, cmd.MailroomID())

	_, err = commands.NewReleasePackageNumberCommand(mailroomID, 1000)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = commands.NewReleasePackageNumberCommand(kernel.UUID{}, 1)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestReleasePackageNumberCommandHandler_TwiceBothSucceed(t *testing.T) {
	ctx := t.Context()
	mailroomID := kernel.NewUUID()
	cmd, _ := commands.NewReleasePackageNumberCommand(mailroomID, 47)

	repo := new(MockSlotRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	factory.On("create").Return(uow).Twice()
	uow.On("Begin", ctx).Return(nil).Twice()
	uow.On("SlotRepository").Return(repo).Twice()
	repo.On("Release", ctx, mailroomID, kernel.MustNewPackageNumber(47)).Return(nil).Twice()
	uow.On("Commit", ctx).Return(nil).Twice()
	uow.On("Rollback", ctx).Return(nil).Twice()

	h := commands.NewReleasePackageNumberCommandHandler(slotFactory{factory}, discard)
	for range 2 {
		ok, err := h.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.True(t, ok)
	}
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReleasePackageNumberCommandHandler_SlotNotFound(t *testing.T) {
	ctx := t.Context()
	mailroomID := kernel.NewUUID()
	cmd, _ := commands.NewReleasePackageNumberCommand(mailroomID, 5)

	repo := new(MockSlotRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	factory.On("create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("SlotRepository").Return(repo).Once()
	repo.On("Release", ctx, mailroomID, kernel.MustNewPackageNumber(5)).Return(slot.ErrSlotNotFound).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewReleasePackageNumberCommandHandler(slotFactory{factory}, discard)
	ok, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, slot.ErrSlotNotFound)
	assert.False(t, ok)
	uow.AssertNotCalled(t, "Commit", ctx)
}
