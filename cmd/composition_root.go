package cmd

import (
	"freight/internal/adapters/in/http"
	"freight/internal/adapters/out/postgres"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/application/usecases/snapshot"
	"freight/internal/jobs"

	"log/slog"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateWaybillCommandHandler() commands.CreateWaybillCommandHandler {
	return commands.NewCreateWaybillCommandHandler(c.uowAdapter())
}

func (c *CompositionRoot) CreateTransitionWaybillStatusCommandHandler() commands.TransitionWaybillStatusCommandHandler {
	var f commands.WaybillUoWFactory = FuncWaybillUoWFactory(func() commands.WaybillUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionWaybillStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteWaybillCommandHandler() commands.DeleteWaybillCommandHandler {
	var f commands.WaybillUoWFactory = FuncWaybillUoWFactory(func() commands.WaybillUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteWaybillCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateManifestCommandHandler() commands.CreateManifestCommandHandler {
	var f commands.ManifestUoWFactory = FuncManifestUoWFactory(func() commands.ManifestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateManifestCommandHandler(f)
}

func (c *CompositionRoot) CreateAddWaybillToManifestCommandHandler() commands.AddWaybillToManifestCommandHandler {
	return commands.NewAddWaybillToManifestCommandHandler(c.uowAdapter())
}

func (c *CompositionRoot) CreateRemoveWaybillFromManifestCommandHandler() commands.RemoveWaybillFromManifestCommandHandler {
	var f commands.ManifestUoWFactory = FuncManifestUoWFactory(func() commands.ManifestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveWaybillFromManifestCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchManifestCommandHandler() commands.DispatchManifestCommandHandler {
	return commands.NewDispatchManifestCommandHandler(c.uowAdapter())
}

func (c *CompositionRoot) CreateVerifyBoxCommandHandler() commands.VerifyBoxCommandHandler {
	return commands.NewVerifyBoxCommandHandler(c.uowAdapter())
}

func (c *CompositionRoot) CreateSaveVerificationCommandHandler() commands.SaveVerificationCommandHandler {
	return commands.NewSaveVerificationCommandHandler(c.uowAdapter())
}

func (c *CompositionRoot) CreateAllocateInventoryRangeCommandHandler() commands.AllocateInventoryRangeCommandHandler {
	var f commands.InventoryUoWFactory = FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAllocateInventoryRangeCommandHandler(f, c.configs.InventoryRangeLimit)
}

func (c *CompositionRoot) CreateConsumeInventoryCommandHandler() commands.ConsumeInventoryCommandHandler {
	var f commands.InventoryUoWFactory = FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConsumeInventoryCommandHandler(f)
}

func (c *CompositionRoot) CreateSetPartnerAssociationCommandHandler() commands.SetPartnerAssociationCommandHandler {
	var f commands.RoutingUoWFactory = FuncRoutingUoWFactory(func() commands.RoutingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetPartnerAssociationCommandHandler(f)
}

func (c *CompositionRoot) CreateGetWaybillQueryHandler() queries.GetWaybillQueryHandler {
	return queries.NewGetWaybillQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListWaybillsQueryHandler() queries.ListWaybillsQueryHandler {
	return queries.NewListWaybillsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListWaybillsByManifestQueryHandler() queries.ListWaybillsByManifestQueryHandler {
	return queries.NewListWaybillsByManifestQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListManifestsQueryHandler() queries.ListManifestsQueryHandler {
	return queries.NewListManifestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateExpectedBoxesQueryHandler() queries.ExpectedBoxesQueryHandler {
	return queries.NewExpectedBoxesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateShortageQueryHandler() queries.ShortageQueryHandler {
	return queries.NewShortageQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListAvailableInventoryQueryHandler() queries.ListAvailableInventoryQueryHandler {
	return queries.NewListAvailableInventoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPartnerAssociationQueryHandler() queries.GetPartnerAssociationQueryHandler {
	return queries.NewGetPartnerAssociationQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateLookupRateQueryHandler() queries.LookupRateQueryHandler {
	return queries.NewLookupRateQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListExpiredEWayBillsQueryHandler() queries.ListExpiredEWayBillsQueryHandler {
	return queries.NewListExpiredEWayBillsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	commandHandlers := http.CommandHandlers{
		CreateWaybill:             c.CreateCreateWaybillCommandHandler(),
		TransitionWaybillStatus:   c.CreateTransitionWaybillStatusCommandHandler(),
		DeleteWaybill:             c.CreateDeleteWaybillCommandHandler(),
		CreateManifest:            c.CreateCreateManifestCommandHandler(),
		AddWaybillToManifest:      c.CreateAddWaybillToManifestCommandHandler(),
		RemoveWaybillFromManifest: c.CreateRemoveWaybillFromManifestCommandHandler(),
		DispatchManifest:          c.CreateDispatchManifestCommandHandler(),
		VerifyBox:                 c.CreateVerifyBoxCommandHandler(),
		SaveVerification:          c.CreateSaveVerificationCommandHandler(),
		AllocateInventoryRange:    c.CreateAllocateInventoryRangeCommandHandler(),
		ConsumeInventory:          c.CreateConsumeInventoryCommandHandler(),
		SetPartnerAssociation:     c.CreateSetPartnerAssociationCommandHandler(),
	}

	queryHandlers := http.QueryHandlers{
		GetWaybill:             c.CreateGetWaybillQueryHandler(),
		ListWaybills:           c.CreateListWaybillsQueryHandler(),
		ListWaybillsByManifest: c.CreateListWaybillsByManifestQueryHandler(),
		ListManifests:          c.CreateListManifestsQueryHandler(),
		ExpectedBoxes:          c.CreateExpectedBoxesQueryHandler(),
		Shortage:               c.CreateShortageQueryHandler(),
		ListAvailableInventory: c.CreateListAvailableInventoryQueryHandler(),
		GetPartnerAssociation:  c.CreateGetPartnerAssociationQueryHandler(),
		LookupRate:             c.CreateLookupRateQueryHandler(),
	}

	return http.NewServer(
		commandHandlers,
		queryHandlers,
		snapshot.NewExporter(c.gormDB),
		snapshot.NewImporter(c.gormDB),
	)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateListExpiredEWayBillsQueryHandler(), logger)
}

func (c *CompositionRoot) uowAdapter() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncWaybillUoWFactory func() commands.WaybillUoW

func (f FuncWaybillUoWFactory) Create() commands.WaybillUoW {
	return f()
}

type FuncManifestUoWFactory func() commands.ManifestUoW

func (f FuncManifestUoWFactory) Create() commands.ManifestUoW {
	return f()
}

type FuncInventoryUoWFactory func() commands.InventoryUoW

func (f FuncInventoryUoWFactory) Create() commands.InventoryUoW {
	return f()
}

type FuncRoutingUoWFactory func() commands.RoutingUoW

func (f FuncRoutingUoWFactory) Create() commands.RoutingUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
