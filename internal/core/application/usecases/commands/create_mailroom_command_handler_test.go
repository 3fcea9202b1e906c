package commands_test

import (
	"errors"
	"testing"

	"mailroom/internal/core/application/usecases/commands"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/mailroom"
	"mailroom/internal/core/domain/model/slot"
	"mailroom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateMailroomCommand(t *testing.T) {
	hours := map[string]string{"friday": "10-14"}
	cmd, err := commands.NewCreateMailroomCommand(kernel.NewUUID(), kernel.NewUUID(), "west", " West Hall ", 0,
		mailroom.Settings{PickupOption: mailroom.PickupByResidentName, Hours: hours})
	require.NoError(t, err)

	assert.Equal(t, "West Hall", cmd.Name())
	assert.Equal(t, mailroom.DefaultPoolSize, cmd.PoolSize())

	hours["friday"] = "closed"
	assert.Equal(t, "10-14", cmd.Settings().Hours["friday"])
}

func TestNewCreateMailroomCommand_Invalid(t *testing.T) {
	_, err := commands.NewCreateMailroomCommand(kernel.UUID{}, kernel.NewUUID(), "", "", 10, mailroom.Settings{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCreateMailroomCommandHandler_ProvisionsPool(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateMailroomCommand(kernel.NewUUID(), kernel.NewUUID(), "west", "West Hall", 3,
		mailroom.Settings{PickupOption: mailroom.PickupByResidentID})

	mailrooms := new(MockMailroomRepository)
	slots := new(MockSlotRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	factory.On("create").Return(uow).Once()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MailroomRepository").Return(mailrooms).Once(),
		mailrooms.On("Add", ctx, mock.AnythingOfType("*mailroom.Mailroom")).Return(nil).Once(),
		uow.On("SlotRepository").Return(slots).Once(),
		slots.On("AddPool", ctx, mock.MatchedBy(func(s []*slot.Slot) bool {
			return len(s) == 3 && s[0].Number().Int() == 1 && s[2].Number().Int() == 3
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateMailroomCommandHandler(mailroomFactory{factory})
	m, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, cmd.MailroomID(), m.ID())
	assert.True(t, m.IsActive())
	uow.AssertExpectations(t)
	slots.AssertExpectations(t)
}

func TestCreateMailroomCommandHandler_DuplicateSlug(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateMailroomCommand(kernel.NewUUID(), kernel.NewUUID(), "west", "West Hall", 3,
		mailroom.Settings{PickupOption: mailroom.PickupByResidentID})

	mailrooms := new(MockMailroomRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	factory.On("create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("MailroomRepository").Return(mailrooms).Once()
	mailrooms.On("Add", ctx, mock.Anything).Return(errs.NewObjectAlreadyExistsError("slug", "west")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewCreateMailroomCommandHandler(mailroomFactory{factory})
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	uow.AssertNotCalled(t, "SlotRepository")
}

func TestCreateMailroomCommandHandler_InvalidSlugNeverOpensTransaction(t *testing.T) {
	cmd, err := commands.NewCreateMailroomCommand(kernel.NewUUID(), kernel.NewUUID(), "West Hall!", "West Hall", 3,
		mailroom.Settings{PickupOption: mailroom.PickupByResidentID})
	require.NoError(t, err)

	factory := new(MockUoWFactory)
	h := commands.NewCreateMailroomCommandHandler(mailroomFactory{factory})
	_, err = h.Handle(t.Context(), cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "create")
}

func TestUpdateMailroomSettingsCommandHandler_EvictsCache(t *testing.T) {
	ctx := t.Context()
	m := newTestMailroom(t)
	settings := mailroom.Settings{PickupOption: mailroom.PickupByResidentName, EmailAdditionalText: "Closed Sundays."}
	cmd, err := commands.NewUpdateMailroomSettingsCommand(m.ID(), settings)
	require.NoError(t, err)

	mailrooms := new(MockMailroomRepository)
	cache := new(MockCache)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	factory.On("create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("MailroomRepository").Return(mailrooms).Once()
	mailrooms.On("Get", ctx, m.ID()).Return(m, nil).Once()
	mailrooms.On("Update", ctx, m).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	cache.On("Delete", ctx, []string{"mailroom:" + m.OrganizationID().String() + ":north-hall"}).
		Return(errors.New("redis down")).Once()

	h := commands.NewUpdateMailroomSettingsCommandHandler(mailroomFactory{factory}, cache, discard)
	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, mailroom.PickupByResidentName, got.Settings().PickupOption)
	assert.Equal(t, "Closed Sundays.", got.Settings().EmailAdditionalText)
	cache.AssertExpectations(t)
}

func TestUpdateMailroomSettingsCommandHandler_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewUpdateMailroomSettingsCommand(id, mailroom.Settings{PickupOption: mailroom.PickupByResidentID})

	mailrooms := new(MockMailroomRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	factory.On("create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("MailroomRepository").Return(mailrooms).Once()
	mailrooms.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("mailroom", id.String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewUpdateMailroomSettingsCommandHandler(mailroomFactory{factory}, nil, discard)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrMailroomNotFound)
}

func TestRetireMailroomCommandHandler_MarksDefunctAndEvictsCache(t *testing.T) {
	ctx := t.Context()
	m := newTestMailroom(t)
	cmd, err := commands.NewRetireMailroomCommand(m.ID())
	require.NoError(t, err)

	mailrooms := new(MockMailroomRepository)
	cache := new(MockCache)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	factory.On("create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("MailroomRepository").Return(mailrooms).Once()
	mailrooms.On("Get", ctx, m.ID()).Return(m, nil).Once()
	mailrooms.On("Update", ctx, mock.MatchedBy(func(got *mailroom.Mailroom) bool {
		return got.Status() == mailroom.StatusDefunct
	})).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	cache.On("Delete", ctx, []string{"mailroom:" + m.OrganizationID().String() + ":north-hall"}).Return(nil).Once()

	h := commands.NewRetireMailroomCommandHandler(mailroomFactory{factory}, cache, discard)
	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.ErrorIs(t, got.EnsureAcceptsPackages(), mailroom.ErrMailroomIsDefunct)
	mailrooms.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestRetireMailroomCommandHandler_NotFoundWritesNothing(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewRetireMailroomCommand(id)

	mailrooms := new(MockMailroomRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	factory.On("create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("MailroomRepository").Return(mailrooms).Once()
	mailrooms.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("mailroom", id.String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewRetireMailroomCommandHandler(mailroomFactory{factory}, nil, discard)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrMailroomNotFound)
	mailrooms.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
