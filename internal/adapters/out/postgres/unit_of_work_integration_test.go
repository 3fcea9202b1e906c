package postgres_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"mailroom/internal/adapters/out/notify"
	postgresadapter "mailroom/internal/adapters/out/postgres"
	"mailroom/internal/adapters/out/postgres/pgtest"
	"mailroom/internal/core/application/usecases/commands"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/core/domain/model/slot"
	"mailroom/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	db      *pgtest.Database
	factory *postgresadapter.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.db = db
	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(db.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.db.Terminate(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Truncate())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestMigrate_IsRepeatable() {
	suite.Require().NoError(postgresadapter.Migrate(suite.db.DB))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().Error(uow.Commit(ctx), "commit without begin")
	suite.Require().Error(uow.Rollback(ctx), "rollback without begin")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "second begin is a no-op")
	suite.Require().NoError(uow.Commit(ctx))
	suite.Require().Error(uow.Rollback(ctx), "rollback after commit")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_ReturnsAllocatedNumber() {
	ctx := context.Background()
	m, err := suite.db.SeedMailroom(ctx, "north", 1)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	n, err := uow.SlotRepository().AllocateNext(ctx, m.ID())
	suite.Require().NoError(err)
	suite.Equal(1, n.Int())
	suite.Require().NoError(uow.Rollback(ctx))

	n, err = suite.factory.Create().SlotRepository().AllocateNext(ctx, m.ID())
	suite.Require().NoError(err)
	suite.Equal(1, n.Int())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PackageAndSlotChangeTogether() {
	ctx := context.Background()
	m, err := suite.db.SeedMailroom(ctx, "north", 2)
	suite.Require().NoError(err)
	r, err := suite.db.SeedResident(ctx, m.ID(), "Ada", "Lovelace", "S-100")
	suite.Require().NoError(err)

	uow := suite.factory.CreateGorm()
	suite.Require().NoError(uow.Begin(ctx))
	n, err := uow.SlotRepository().AllocateNext(ctx, m.ID())
	suite.Require().NoError(err)
	pkg, err := parcel.NewPackage(kernel.NewUUID(), m.ID(), r.ID(), kernel.NewUUID(), n, "DHL", time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.PackageRepository().Add(ctx, pkg))
	suite.Len(uow.TrackedAggregates(), 1)
	suite.Require().NoError(uow.Commit(ctx))

	fresh := suite.factory.Create()
	got, err := fresh.PackageRepository().GetInMailroom(ctx, m.ID(), pkg.ID())
	suite.Require().NoError(err)
	suite.Equal(n, got.Number())

	suite.Require().NoError(fresh.SlotRepository().Release(ctx, m.ID(), n))
	_, err = fresh.ResidentRepository().GetInMailroom(ctx, kernel.NewUUID(), r.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestAllocate_UnknownMailroomIsExhausted() {
	_, err := suite.factory.Create().SlotRepository().AllocateNext(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, slot.ErrQueueExhausted)
}

type packageUoWFactory struct {
	*postgresadapter.GormUnitOfWorkFactory
}

func (f packageUoWFactory) Create() commands.PackageUoW {
	return f.GormUnitOfWorkFactory.Create()
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRegister_ManuallyReleasedBusyNumberIsSkipped() {
	ctx := context.Background()
	m, err := suite.db.SeedMailroom(ctx, "north", 2)
	suite.Require().NoError(err)
	r, err := suite.db.SeedResident(ctx, m.ID(), "Ada", "Lovelace", "S-100")
	suite.Require().NoError(err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := commands.NewRegisterPackageCommandHandler(packageUoWFactory{suite.factory},
		notify.NewLogNotifier(logger, "mail@example.edu"), logger, nil)
	register := func() (*parcel.Package, error) {
		cmd, err := commands.NewRegisterPackageCommand(kernel.NewUUID(), m.ID(), r.ID(), kernel.NewUUID(), "UPS")
		suite.Require().NoError(err)
		return handler.Handle(ctx, cmd)
	}

	first, err := register()
	suite.Require().NoError(err)
	suite.Equal(1, first.Number().Int())

	suite.Require().NoError(suite.factory.Create().SlotRepository().Release(ctx, m.ID(), first.Number()))

	second, err := register()
	suite.Require().NoError(err)
	suite.Equal(2, second.Number().Int())

	var available bool
	suite.Require().NoError(suite.db.DB.Raw(
		`SELECT is_available FROM package_number_slots WHERE mailroom_id = ? AND package_number = 1`,
		m.ID().Bytes()).Scan(&available).Error)
	suite.False(available, "a number held by a waiting package stays unavailable")

	_, err = register()
	suite.Require().ErrorIs(err, slot.ErrQueueExhausted)

	var waiting int64
	suite.Require().NoError(suite.db.DB.Raw(
		`SELECT count(*) FROM packages WHERE mailroom_id = ? AND status = 'WAITING'`,
		m.ID().Bytes()).Scan(&waiting).Error)
	suite.Equal(int64(2), waiting)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
