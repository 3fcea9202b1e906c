package packagerepo_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"mailroom/internal/adapters/out/postgres/packagerepo"
	"mailroom/internal/adapters/out/postgres/pgtest"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/mailroom"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/core/domain/model/resident"
	"mailroom/internal/core/domain/model/slot"
	"mailroom/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type PackageRepositoryIntegrationTestSuite struct {
	suite.Suite
	db       *pgtest.Database
	mailroom *mailroom.Mailroom
	resident *resident.Resident
	repo     *packagerepo.GormPackageRepository
}

func (suite *PackageRepositoryIntegrationTestSuite) SetupSuite() {
	db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *PackageRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.db.Terminate(context.Background()))
}

func (suite *PackageRepositoryIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(suite.db.Truncate())

	var err error
	suite.mailroom, err = suite.db.SeedMailroom(ctx, "north", 10)
	suite.Require().NoError(err)
	suite.resident, err = suite.db.SeedResident(ctx, suite.mailroom.ID(), "Ada", "Lovelace", "S-100")
	suite.Require().NoError(err)
	suite.repo = packagerepo.NewGormPackageRepository(suite.db.DB, pgtest.NoopTracker{})
}

func (suite *PackageRepositoryIntegrationTestSuite) newPackage(number int) *parcel.Package {
	p, err := parcel.NewPackage(kernel.NewUUID(), suite.mailroom.ID(), suite.resident.ID(), kernel.NewUUID(),
		kernel.MustNewPackageNumber(number), "FedEx", time.Now())
	suite.Require().NoError(err)
	return p
}

func (suite *PackageRepositoryIntegrationTestSuite) TestAdd_TracksAndRoundTrips() {
	ctx := context.Background()
	tracker := new(MockAggregateTracker)
	repo := packagerepo.NewGormPackageRepository(suite.db.DB, tracker)
	p := suite.newPackage(4)
	tracker.On("TrackAggregate", p.ID(), p).Once()

	suite.Require().NoError(repo.Add(ctx, p))

	got, err := repo.GetInMailroom(ctx, suite.mailroom.ID(), p.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.Waiting, got.Status())
	suite.Equal(4, got.Number().Int())
	suite.Equal("FedEx", got.Provider())
	suite.Nil(got.RetrievedAt())
	suite.WithinDuration(p.CreatedAt(), got.CreatedAt(), time.Millisecond)
	tracker.AssertExpectations(suite.T())
}

func (suite *PackageRepositoryIntegrationTestSuite) TestAdd_SecondWaitingPackageWithSameNumberIsRejected() {
	ctx := context.Background()
	suite.Require().NoError(suite.repo.Add(ctx, suite.newPackage(7)))

	err := suite.repo.Add(ctx, suite.newPackage(7))
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
	suite.Require().ErrorIs(err, slot.ErrNumberInUse)
}

func (suite *PackageRepositoryIntegrationTestSuite) TestAdd_NumberReusableAfterPackageLeftWaiting() {
	ctx := context.Background()
	first := suite.newPackage(7)
	suite.Require().NoError(suite.repo.Add(ctx, first))
	suite.Require().NoError(first.Transition(parcel.Retrieved, kernel.NewUUID(), time.Now()))
	suite.Require().NoError(suite.repo.SaveTransition(ctx, first))

	suite.Require().NoError(suite.repo.Add(ctx, suite.newPackage(7)))
}

func (suite *PackageRepositoryIntegrationTestSuite) TestGetInMailroom_OtherTenantIsNotFound() {
	ctx := context.Background()
	p := suite.newPackage(1)
	suite.Require().NoError(suite.repo.Add(ctx, p))

	_, err := suite.repo.GetInMailroom(ctx, kernel.NewUUID(), p.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PackageRepositoryIntegrationTestSuite) TestSaveTransition_PersistsStamps() {
	ctx := context.Background()
	p := suite.newPackage(2)
	suite.Require().NoError(suite.repo.Add(ctx, p))
	staff := kernel.NewUUID()
	suite.Require().NoError(p.Transition(parcel.StaffResolved, staff, time.Now()))

	suite.Require().NoError(suite.repo.SaveTransition(ctx, p))

	got, err := suite.repo.GetInMailroom(ctx, suite.mailroom.ID(), p.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.StaffResolved, got.Status())
	suite.Require().NotNil(got.PickupStaffID())
	suite.Equal(staff, *got.PickupStaffID())
	suite.NotNil(got.RetrievedAt())
}

func (suite *PackageRepositoryIntegrationTestSuite) TestSaveTransition_StaleViewLoses() {
	ctx := context.Background()
	p := suite.newPackage(3)
	suite.Require().NoError(suite.repo.Add(ctx, p))

	first, err := suite.repo.GetInMailroom(ctx, suite.mailroom.ID(), p.ID())
	suite.Require().NoError(err)
	second, err := suite.repo.GetInMailroom(ctx, suite.mailroom.ID(), p.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.Transition(parcel.Retrieved, kernel.NewUUID(), time.Now()))
	suite.Require().NoError(second.Transition(parcel.StaffRemoved, kernel.NewUUID(), time.Now()))

	suite.Require().NoError(suite.repo.SaveTransition(ctx, first))
	err = suite.repo.SaveTransition(ctx, second)
	suite.Require().ErrorIs(err, parcel.ErrInvalidTransition)

	got, err := suite.repo.GetInMailroom(ctx, suite.mailroom.ID(), p.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.Retrieved, got.Status())
}

func (suite *PackageRepositoryIntegrationTestSuite) TestSaveTransition_ConcurrentRacersHaveOneWinner() {
	ctx := context.Background()
	p := suite.newPackage(5)
	suite.Require().NoError(suite.repo.Add(ctx, p))

	const racers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		winners   int
		conflicts int
	)
	for range racers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := suite.db.DB.Transaction(func(tx *gorm.DB) error {
				repo := packagerepo.NewGormPackageRepository(tx, pgtest.NoopTracker{})
				view, err := repo.GetInMailroom(ctx, suite.mailroom.ID(), p.ID())
				if err != nil {
					return err
				}
				if err = view.Transition(parcel.Retrieved, kernel.NewUUID(), time.Now()); err != nil {
					return err
				}
				return repo.SaveTransition(ctx, view)
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				winners++
			case errors.Is(err, parcel.ErrInvalidTransition):
				conflicts++
			}
		}()
	}
	wg.Wait()

	suite.Equal(1, winners)
	suite.Equal(racers-1, conflicts)
}

func (suite *PackageRepositoryIntegrationTestSuite) TestSaveTransition_RequiresTerminalStatus() {
	err := suite.repo.SaveTransition(context.Background(), suite.newPackage(6))
	suite.Require().ErrorIs(err, parcel.ErrInvalidTransition)
}

func TestPackageRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PackageRepositoryIntegrationTestSuite))
}
