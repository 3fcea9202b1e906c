package commands_test

import (
	"testing"

	"mailroom/internal/core/application/usecases/commands"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/resident"
	"mailroom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func residentUoW(t *testing.T) (*MockUoW, *MockResidentRepository, commands.ResidentUoWFactory) {
	t.Helper()
	ctx := t.Context()
	repo := new(MockResidentRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	factory.On("create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ResidentRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	return uow, repo, residentFactory{factory}
}

func TestAddResidentCommandHandler_New(t *testing.T) {
	ctx := t.Context()
	mailroomID := kernel.NewUUID()
	cmd, err := commands.NewAddResidentCommand(kernel.NewUUID(), mailroomID, adaProfile())
	require.NoError(t, err)

	uow, repo, factory := residentUoW(t)
	repo.On("FindByStudentID", ctx, mailroomID, "S-100").Return(nil, nil).Once()
	repo.On("Add", ctx, mock.AnythingOfType("*resident.Resident")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewAddResidentCommandHandler(factory)
	r, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, cmd.ResidentID(), r.ID())
	assert.True(t, r.IsActive())
	repo.AssertExpectations(t)
}

func TestAddResidentCommandHandler_ActiveDuplicate(t *testing.T) {
	ctx := t.Context()
	mailroomID := kernel.NewUUID()
	existing := newTestResident(t, mailroomID, adaProfile())
	cmd, _ := commands.NewAddResidentCommand(kernel.NewUUID(), mailroomID, adaProfile())

	uow, repo, factory := residentUoW(t)
	repo.On("FindByStudentID", ctx, mailroomID, "S-100").Return(existing, nil).Once()

	h := commands.NewAddResidentCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAddResidentCommandHandler_ReactivatesRemoved(t *testing.T) {
	ctx := t.Context()
	mailroomID := kernel.NewUUID()
	existing := newTestResident(t, mailroomID, adaProfile())
	existing.RemoveIndividually()
	profile := adaProfile()
	profile.Email = "ada.lovelace@example.edu"
	cmd, _ := commands.NewAddResidentCommand(kernel.NewUUID(), mailroomID, profile)

	uow, repo, factory := residentUoW(t)
	repo.On("FindByStudentID", ctx, mailroomID, "S-100").Return(existing, nil).Once()
	repo.On("Update", ctx, existing).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewAddResidentCommandHandler(factory)
	r, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, existing.ID(), r.ID())
	assert.True(t, r.IsActive())
	assert.Equal(t, "ada.lovelace@example.edu", r.Email())
}

func TestRemoveResidentCommandHandler(t *testing.T) {
	ctx := t.Context()
	mailroomID := kernel.NewUUID()
	r := newTestResident(t, mailroomID, adaProfile())
	cmd, err := commands.NewRemoveResidentCommand(mailroomID, r.ID())
	require.NoError(t, err)

	uow, repo, factory := residentUoW(t)
	repo.On("GetInMailroom", ctx, mailroomID, r.ID()).Return(r, nil).Once()
	repo.On("Update", ctx, r).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewRemoveResidentCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, resident.StatusRemovedIndividual, r.Status())
}

func TestRemoveResidentCommandHandler_NotFound(t *testing.T) {
	ctx := t.Context()
	mailroomID, residentID := kernel.NewUUID(), kernel.NewUUID()
	cmd, _ := commands.NewRemoveResidentCommand(mailroomID, residentID)

	_, repo, factory := residentUoW(t)
	repo.On("GetInMailroom", ctx, mailroomID, residentID).
		Return(nil, errs.NewObjectNotFoundError("resident", residentID.String())).Once()

	h := commands.NewRemoveResidentCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), commands.ErrResidentNotFound)
}

func TestNewSyncRosterCommand_RejectsDuplicatesAndBadRows(t *testing.T) {
	mailroomID := kernel.NewUUID()

	_, err := commands.NewSyncRosterCommand(mailroomID, nil)
	require.ErrorIs(t, err, commands.ErrRosterIsEmpty)

	dup := adaProfile()
	dup.StudentID = "s-100"
	_, err = commands.NewSyncRosterCommand(mailroomID, []resident.Profile{adaProfile(), dup})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "row 2")

	_, err = commands.NewSyncRosterCommand(mailroomID, []resident.Profile{{FirstName: "No"}})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestSyncRosterCommandHandler(t *testing.T) {
	ctx := t.Context()
	mailroomID := kernel.NewUUID()

	unchanged := newTestResident(t, mailroomID, adaProfile())
	renamed := newTestResident(t, mailroomID, resident.Profile{
		FirstName: "Grace", LastName: "Hopper", StudentID: "S-200", Email: "grace@example.edu"})
	returning := newTestResident(t, mailroomID, resident.Profile{
		FirstName: "Alan", LastName: "Turing", StudentID: "S-300", Email: "alan@example.edu"})
	returning.RemoveInBulk()
	leaving := newTestResident(t, mailroomID, resident.Profile{
		FirstName: "Edsger", LastName: "Dijkstra", StudentID: "S-400", Email: "ewd@example.edu"})
	setAside, err := resident.RestoreResident(kernel.NewUUID(), mailroomID, resident.Profile{
		FirstName: "Barbara", LastName: "Liskov", StudentID: "S-500", Email: "liskov@example.edu"},
		resident.StatusAdminAction)
	require.NoError(t, err)

	roster := []resident.Profile{
		adaProfile(),
		{FirstName: "Grace", LastName: "Murray Hopper", StudentID: "S-200", Email: "grace@example.edu"},
		{FirstName: "Alan", LastName: "Turing", StudentID: "S-300", Email: "alan@example.edu"},
		{FirstName: "Barbara", LastName: "Liskov", StudentID: "S-500", Email: "liskov@example.edu"},
		{FirstName: "Donald", LastName: "Knuth", StudentID: "S-600", Email: "knuth@example.edu"},
	}
	cmd, err := commands.NewSyncRosterCommand(mailroomID, roster)
	require.NoError(t, err)

	uow, repo, factory := residentUoW(t)
	repo.On("ListInMailroom", ctx, mailroomID).
		Return([]*resident.Resident{unchanged, renamed, returning, leaving, setAside}, nil).Once()
	repo.On("Add", ctx, mock.MatchedBy(func(r *resident.Resident) bool { return r.StudentID() == "S-600" })).
		Return(nil).Once()
	repo.On("Update", ctx, renamed).Return(nil).Once()
	repo.On("Update", ctx, returning).Return(nil).Once()
	repo.On("Update", ctx, leaving).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewSyncRosterCommandHandler(factory, discard)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, commands.RosterSyncResult{Added: 1, Updated: 1, Reactivated: 1, Removed: 1, Unchanged: 2}, result)
	assert.Equal(t, "Murray Hopper", renamed.Profile().LastName)
	assert.True(t, returning.IsActive())
	assert.Equal(t, resident.StatusRemovedBulk, leaving.Status())
	assert.Equal(t, resident.StatusAdminAction, setAside.Status())
	repo.AssertExpectations(t)
}
