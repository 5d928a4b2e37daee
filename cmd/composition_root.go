package cmd

import (
	"log/slog"

	"routesync/internal/adapters/out/postgres"
	"routesync/internal/adapters/out/postgres/auditrepo"
	"routesync/internal/adapters/out/postgres/routerepo"
	"routesync/internal/adapters/out/routing"
	"routesync/internal/core/application/facade"
	"routesync/internal/core/application/usecases/commands"
	"routesync/internal/core/application/usecases/queries"
	"routesync/internal/core/domain/services"
	"routesync/internal/pkg/clock"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	clock      clock.SystemClock
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	if logger == nil {
		logger = slog.Default()
	}
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      clock.NewSystemClock(),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateRouteSyncFacade() facade.RouteSyncFacade {
	return facade.NewRouteSyncFacade(
		routing.NewClient(c.config.RoutingServiceURL, nil),
		routerepo.NewGormRouteRecordRepository(c.gormDB),
		auditrepo.NewGormSyncAuditRepository(c.gormDB),
		c.CreateAssignRouteToDriverCommandHandler(),
		c.CreateSyncRouteWithSchedulingCommandHandler(),
		c.clock,
		c.logger,
	)
}

func (c *CompositionRoot) CreateAssignRouteToDriverCommandHandler() commands.AssignRouteToDriverCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignRouteToDriverCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateSyncRouteWithSchedulingCommandHandler() commands.SyncRouteWithSchedulingCommandHandler {
	var f commands.ShiftUoWFactory = FuncShiftUoWFactory(func() commands.ShiftUoW {
		return c.uowFactory.Create()
	})
	planner := services.NewShiftPlanner(c.clock, c.logger)
	return commands.NewSyncRouteWithSchedulingCommandHandler(f, planner, c.clock, c.logger)
}

func (c *CompositionRoot) CreateConfirmAssignmentCommandHandler() commands.ConfirmAssignmentCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmAssignmentCommandHandler(f, c.clock, c.logger)
}

func (c *CompositionRoot) CreateUnassignShiftCommandHandler() commands.UnassignShiftCommandHandler {
	var f commands.ShiftUoWFactory = FuncShiftUoWFactory(func() commands.ShiftUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUnassignShiftCommandHandler(f)
}

func (c *CompositionRoot) CreatePurgeStaleShiftsCommandHandler() commands.PurgeStaleShiftsCommandHandler {
	var f commands.ShiftUoWFactory = FuncShiftUoWFactory(func() commands.ShiftUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPurgeStaleShiftsCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateGetPendingShiftsQueryHandler() queries.GetPendingShiftsQueryHandler {
	return queries.NewGetPendingShiftsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRouteRecordsQueryHandler() queries.GetRouteRecordsQueryHandler {
	return queries.NewGetRouteRecordsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRouteRecordQueryHandler() queries.GetRouteRecordQueryHandler {
	return queries.NewGetRouteRecordQueryHandler(c.gormDB)
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncShiftUoWFactory func() commands.ShiftUoW

func (f FuncShiftUoWFactory) Create() commands.ShiftUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
