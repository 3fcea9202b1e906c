package cmd

import (
	"log/slog"

	httpadapter "mailroom/internal/adapters/in/http"
	"mailroom/internal/adapters/out/notify"
	"mailroom/internal/adapters/out/postgres"
	"mailroom/internal/adapters/out/rediscache"
	"mailroom/internal/core/application/usecases/commands"
	"mailroom/internal/core/application/usecases/queries"
	"mailroom/internal/core/ports"
	"mailroom/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const cachePrefix = "mailroom:"

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	cache      ports.Cache
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewCompositionRoot wires the adapters. redisClient may be nil, which turns
// the settings cache off.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, redisClient redis.UniversalClient, logger *slog.Logger) CompositionRoot {
	root := CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notify.NewLogNotifier(logger, configs.MailFrom),
		logger:     logger,
	}
	if redisClient != nil {
		root.cache = rediscache.NewCache(redisClient, cachePrefix)
	}
	return root
}

func (c *CompositionRoot) CreateCreateMailroomCommandHandler() commands.CreateMailroomCommandHandler {
	var f commands.MailroomUoWFactory = FuncMailroomUoWFactory(func() commands.MailroomUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMailroomCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateMailroomSettingsCommandHandler() commands.UpdateMailroomSettingsCommandHandler {
	var f commands.MailroomUoWFactory = FuncMailroomUoWFactory(func() commands.MailroomUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateMailroomSettingsCommandHandler(f, c.cache, c.logger)
}

func (c *CompositionRoot) CreateRetireMailroomCommandHandler() commands.RetireMailroomCommandHandler {
	var f commands.MailroomUoWFactory = FuncMailroomUoWFactory(func() commands.MailroomUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRetireMailroomCommandHandler(f, c.cache, c.logger)
}

func (c *CompositionRoot) CreateAllocatePackageNumberCommandHandler() commands.AllocatePackageNumberCommandHandler {
	var f commands.SlotUoWFactory = FuncSlotUoWFactory(func() commands.SlotUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAllocatePackageNumberCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateReleasePackageNumberCommandHandler() commands.ReleasePackageNumberCommandHandler {
	var f commands.SlotUoWFactory = FuncSlotUoWFactory(func() commands.SlotUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReleasePackageNumberCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateReconcileSlotsCommandHandler() commands.ReconcileSlotsCommandHandler {
	var f commands.SlotUoWFactory = FuncSlotUoWFactory(func() commands.SlotUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReconcileSlotsCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateRegisterPackageCommandHandler() commands.RegisterPackageCommandHandler {
	var f commands.PackageUoWFactory = FuncPackageUoWFactory(func() commands.PackageUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterPackageCommandHandler(f, c.notifier, c.logger, nil)
}

func (c *CompositionRoot) CreateTransitionPackageCommandHandler() commands.TransitionPackageCommandHandler {
	var f commands.PackageUoWFactory = FuncPackageUoWFactory(func() commands.PackageUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionPackageCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateAddResidentCommandHandler() commands.AddResidentCommandHandler {
	var f commands.ResidentUoWFactory = FuncResidentUoWFactory(func() commands.ResidentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddResidentCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveResidentCommandHandler() commands.RemoveResidentCommandHandler {
	var f commands.ResidentUoWFactory = FuncResidentUoWFactory(func() commands.ResidentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveResidentCommandHandler(f)
}

func (c *CompositionRoot) CreateSyncRosterCommandHandler() commands.SyncRosterCommandHandler {
	var f commands.ResidentUoWFactory = FuncResidentUoWFactory(func() commands.ResidentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSyncRosterCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateCreateInvitationCommandHandler() commands.CreateInvitationCommandHandler {
	var f commands.InvitationUoWFactory = FuncInvitationUoWFactory(func() commands.InvitationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateInvitationCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateResolveInvitationCommandHandler() commands.ResolveInvitationCommandHandler {
	var f commands.InvitationUoWFactory = FuncInvitationUoWFactory(func() commands.InvitationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResolveInvitationCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelInvitationCommandHandler() commands.CancelInvitationCommandHandler {
	var f commands.InvitationUoWFactory = FuncInvitationUoWFactory(func() commands.InvitationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelInvitationCommandHandler(f)
}

func (c *CompositionRoot) CreateExpireInvitationsCommandHandler() commands.ExpireInvitationsCommandHandler {
	var f commands.InvitationUoWFactory = FuncInvitationUoWFactory(func() commands.InvitationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireInvitationsCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateGetMailroomBySlugQueryHandler() queries.GetMailroomBySlugQueryHandler {
	return queries.NewGetMailroomBySlugQueryHandler(c.gormDB, c.cache, c.configs.RedisTTL, c.logger)
}

func (c *CompositionRoot) CreateGetPackagesQueryHandler() queries.GetPackagesQueryHandler {
	return queries.NewGetPackagesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetResidentWaitingPackagesQueryHandler() queries.GetResidentWaitingPackagesQueryHandler {
	return queries.NewGetResidentWaitingPackagesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchResidentsQueryHandler() queries.SearchResidentsQueryHandler {
	return queries.NewSearchResidentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPoolUsageQueryHandler() queries.GetPoolUsageQueryHandler {
	return queries.NewGetPoolUsageQueryHandler(c.gormDB)
}

// CreateHTTPServer builds the server behind the generated /api/v1 routes.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateMailroom:         c.CreateCreateMailroomCommandHandler(),
		UpdateMailroomSettings: c.CreateUpdateMailroomSettingsCommandHandler(),
		RetireMailroom:         c.CreateRetireMailroomCommandHandler(),
		AllocatePackageNumber:  c.CreateAllocatePackageNumberCommandHandler(),
		ReleasePackageNumber:   c.CreateReleasePackageNumberCommandHandler(),
		RegisterPackage:        c.CreateRegisterPackageCommandHandler(),
		TransitionPackage:      c.CreateTransitionPackageCommandHandler(),
		AddResident:            c.CreateAddResidentCommandHandler(),
		RemoveResident:         c.CreateRemoveResidentCommandHandler(),
		SyncRoster:             c.CreateSyncRosterCommandHandler(),
		CreateInvitation:       c.CreateCreateInvitationCommandHandler(),
		ResolveInvitation:      c.CreateResolveInvitationCommandHandler(),
		CancelInvitation:       c.CreateCancelInvitationCommandHandler(),

		GetMailroomBySlug:          c.CreateGetMailroomBySlugQueryHandler(),
		GetPackages:                c.CreateGetPackagesQueryHandler(),
		GetResidentWaitingPackages: c.CreateGetResidentWaitingPackagesQueryHandler(),
		SearchResidents:            c.CreateSearchResidentsQueryHandler(),
		GetPoolUsage:               c.CreateGetPoolUsageQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	expire := c.CreateExpireInvitationsCommandHandler()
	reconcile := c.CreateReconcileSlotsCommandHandler()
	return jobs.NewJobManager(jobs.Config{
		InvitationExpirySchedule: c.configs.InvitationExpirySchedule,
		SlotReconcileSchedule:    c.configs.SlotReconcileSchedule,
		SlotReconcileGrace:       c.configs.SlotReconcileGrace,
	}, &expire, &reconcile, c.logger)
}

type FuncMailroomUoWFactory func() commands.MailroomUoW

func (f FuncMailroomUoWFactory) Create() commands.MailroomUoW {
	return f()
}

type FuncSlotUoWFactory func() commands.SlotUoW

func (f FuncSlotUoWFactory) Create() commands.SlotUoW {
	return f()
}

type FuncPackageUoWFactory func() commands.PackageUoW

func (f FuncPackageUoWFactory) Create() commands.PackageUoW {
	return f()
}

type FuncResidentUoWFactory func() commands.ResidentUoW

func (f FuncResidentUoWFactory) Create() commands.ResidentUoW {
	return f()
}

type FuncInvitationUoWFactory func() commands.InvitationUoW

func (f FuncInvitationUoWFactory) Create() commands.InvitationUoW {
	return f()
}
