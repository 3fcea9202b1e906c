package commands_test

import (
	"testing"
	"time"

	"mailroom/internal/core/application/usecases/commands"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/slot"
	"mailroom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReconcileSlotsCommand(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	cmd, err := commands.NewReconcileSlotsCommand(now, 15*time.Minute, 100)
	require.NoError(t, err)
	assert.Equal(t, now.Add(-15*time.Minute), cmd.Cutoff())
	assert.Equal(t, 100, cmd.BatchSize())

	_, err = commands.NewReconcileSlotsCommand(now, 0, 100)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestReconcileSlotsCommandHandler(t *testing.T) {
	ctx := t.Context()
	now := time.Now()
	cmd, _ := commands.NewReconcileSlotsCommand(now, time.Hour, 50)
	mailroomID := kernel.NewUUID()
	old := now.Add(-2 * time.Hour)
	recent := now.Add(-time.Minute)

	leaked, err := slot.RestoreSlot(mailroomID, kernel.MustNewPackageNumber(1), false, &old)
	require.NoError(t, err)
	raced, err := slot.RestoreSlot(mailroomID, kernel.MustNewPackageNumber(2), false, &old)
	require.NoError(t, err)
	young, err := slot.RestoreSlot(mailroomID, kernel.MustNewPackageNumber(3), false, &recent)
	require.NoError(t, err)

	repo := new(MockSlotRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	factory.On("create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("SlotRepository").Return(repo).Once()
	repo.On("ListLeaked", ctx, cmd.Cutoff(), 50).Return([]*slot.Slot{leaked, raced, young}, nil).Once()
	repo.On("ReleaseIfLeaked", ctx, leaked, cmd.Cutoff()).Return(true, nil).Once()
	repo.On("ReleaseIfLeaked", ctx, raced, cmd.Cutoff()).Return(false, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewReconcileSlotsCommandHandler(slotFactory{factory}, discard)
	n, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	repo.AssertNotCalled(t, "ReleaseIfLeaked", ctx, young, cmd.Cutoff())
	repo.AssertExpectations(t)
}
