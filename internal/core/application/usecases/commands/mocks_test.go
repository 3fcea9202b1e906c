package commands_test

import (
	"context"
	"time"

	"mailroom/internal/core/application/usecases/commands"
	"mailroom/internal/core/domain/model/invitation"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/mailroom"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/core/domain/model/resident"
	"mailroom/internal/core/domain/model/slot"
	"mailroom/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockMailroomRepository struct{ mock.Mock }

func (m *MockMailroomRepository) Add(ctx context.Context, a *mailroom.Mailroom) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockMailroomRepository) Update(ctx context.Context, a *mailroom.Mailroom) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockMailroomRepository) Get(ctx context.Context, id kernel.UUID) (*mailroom.Mailroom, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mailroom.Mailroom), args.Error(1)
}

type MockSlotRepository struct{ mock.Mock }

func (m *MockSlotRepository) AddPool(ctx context.Context, slots []*slot.Slot) error {
	return m.Called(ctx, slots).Error(0)
}

func (m *MockSlotRepository) AllocateNext(ctx context.Context, mailroomID kernel.UUID) (kernel.PackageNumber, error) {
	args := m.Called(ctx, mailroomID)
	return args.Get(0).(kernel.PackageNumber), args.Error(1)
}

func (m *MockSlotRepository) Release(ctx context.Context, mailroomID kernel.UUID, number kernel.PackageNumber) error {
	return m.Called(ctx, mailroomID, number).Error(0)
}

func (m *MockSlotRepository) ListLeaked(ctx context.Context, cutoff time.Time, limit int) ([]*slot.Slot, error) {
	args := m.Called(ctx, cutoff, limit)
	return args.Get(0).([]*slot.Slot), args.Error(1)
}

func (m *MockSlotRepository) ReleaseIfLeaked(ctx context.Context, s *slot.Slot, cutoff time.Time) (bool, error) {
	args := m.Called(ctx, s, cutoff)
	return args.Bool(0), args.Error(1)
}

type MockPackageRepository struct{ mock.Mock }

func (m *MockPackageRepository) Add(ctx context.Context, a *parcel.Package) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockPackageRepository) GetInMailroom(ctx context.Context, mailroomID, id kernel.UUID) (*parcel.Package, error) {
	args := m.Called(ctx, mailroomID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Package), args.Error(1)
}

func (m *MockPackageRepository) SaveTransition(ctx context.Context, a *parcel.Package) error {
	return m.Called(ctx, a).Error(0)
}

type MockResidentRepository struct{ mock.Mock }

func (m *MockResidentRepository) Add(ctx context.Context, a *resident.Resident) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockResidentRepository) Update(ctx context.Context, a *resident.Resident) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockResidentRepository) GetInMailroom(ctx context.Context, mailroomID, id kernel.UUID) (*resident.Resident, error) {
	args := m.Called(ctx, mailroomID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resident.Resident), args.Error(1)
}

func (m *MockResidentRepository) FindByStudentID(ctx context.Context, mailroomID kernel.UUID, studentID string) (*resident.Resident, error) {
	args := m.Called(ctx, mailroomID, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resident.Resident), args.Error(1)
}

func (m *MockResidentRepository) ListInMailroom(ctx context.Context, mailroomID kernel.UUID) ([]*resident.Resident, error) {
	args := m.Called(ctx, mailroomID)
	return args.Get(0).([]*resident.Resident), args.Error(1)
}

type MockInvitationRepository struct{ mock.Mock }

func (m *MockInvitationRepository) Add(ctx context.Context, a *invitation.Invitation) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockInvitationRepository) Update(ctx context.Context, a *invitation.Invitation) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockInvitationRepository) Get(ctx context.Context, id kernel.UUID) (*invitation.Invitation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invitation.Invitation), args.Error(1)
}

func (m *MockInvitationRepository) HasPending(ctx context.Context, email string, orgID kernel.UUID, now time.Time) (bool, error) {
	args := m.Called(ctx, email, orgID, now)
	return args.Bool(0), args.Error(1)
}

func (m *MockInvitationRepository) ListExpiredPending(ctx context.Context, now time.Time, limit int) ([]*invitation.Invitation, error) {
	args := m.Called(ctx, now, limit)
	return args.Get(0).([]*invitation.Invitation), args.Error(1)
}

// MockUoW satisfies every narrowed unit of work of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) MailroomRepository() ports.MailroomRepository {
	return m.Called().Get(0).(ports.MailroomRepository)
}

func (m *MockUoW) SlotRepository() ports.SlotRepository {
	return m.Called().Get(0).(ports.SlotRepository)
}

func (m *MockUoW) PackageRepository() ports.PackageRepository {
	return m.Called().Get(0).(ports.PackageRepository)
}

func (m *MockUoW) ResidentRepository() ports.ResidentRepository {
	return m.Called().Get(0).(ports.ResidentRepository)
}

func (m *MockUoW) InvitationRepository() ports.InvitationRepository {
	return m.Called().Get(0).(ports.InvitationRepository)
}

// MockUoWFactory hands out the configured units of work in order and
// satisfies every narrowed factory through its typed adapters.
type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) create() *MockUoW {
	return m.Called().Get(0).(*MockUoW)
}

type (
	mailroomFactory   struct{ *MockUoWFactory }
	slotFactory       struct{ *MockUoWFactory }
	packageFactory    struct{ *MockUoWFactory }
	residentFactory   struct{ *MockUoWFactory }
	invitationFactory struct{ *MockUoWFactory }
)

func (f mailroomFactory) Create() commands.MailroomUoW     { return f.create() }
func (f slotFactory) Create() commands.SlotUoW             { return f.create() }
func (f packageFactory) Create() commands.PackageUoW       { return f.create() }
func (f residentFactory) Create() commands.ResidentUoW     { return f.create() }
func (f invitationFactory) Create() commands.InvitationUoW { return f.create() }

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) PackageArrived(ctx context.Context, n ports.PackageNotice) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNotifier) PackageRetrieved(ctx context.Context, n ports.PackageNotice) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNotifier) InvitationCreated(ctx context.Context, n ports.InvitationNotice) error {
	return m.Called(ctx, n).Error(0)
}

type MockCache struct{ mock.Mock }

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *MockCache) Delete(ctx context.Context, keys ...string) error {
	return m.Called(ctx, keys).Error(0)
}
