package cmd

import (
	"log/slog"

	httpin "pizzabot/internal/adapters/in/http"
	"pizzabot/internal/adapters/in/tools"
	"pizzabot/internal/adapters/out/postgres"
	"pizzabot/internal/core/application/usecases/commands"
	"pizzabot/internal/core/application/usecases/queries"
	"pizzabot/internal/core/domain/model/menu"
	"pizzabot/internal/core/domain/services"
	"pizzabot/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	catalog    *menu.Menu
	logger     *slog.Logger
}

func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	catalog *menu.Menu,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    catalog,
		logger:     logger,
	}
}

func (cr *CompositionRoot) NewStartOrderCommandHandler() commands.StartOrderCommandHandler {
	return commands.NewStartOrderCommandHandler(
		FuncUoWFactory(func() commands.UoW {
			return cr.uowFactory.Create()
		}),
	)
}

func (cr *CompositionRoot) NewAddPizzaCommandHandler() commands.AddPizzaCommandHandler {
	return commands.NewAddPizzaCommandHandler(cr.newOrderUoWFactory(), cr.catalog)
}

func (cr *CompositionRoot) NewAddExtraCommandHandler() commands.AddExtraCommandHandler {
	return commands.NewAddExtraCommandHandler(cr.newOrderUoWFactory(), cr.catalog)
}

func (cr *CompositionRoot) NewRemoveItemCommandHandler() commands.RemoveItemCommandHandler {
	return commands.NewRemoveItemCommandHandler(cr.newOrderUoWFactory())
}

func (cr *CompositionRoot) NewCheckoutCommandHandler() commands.CheckoutCommandHandler {
	return commands.NewCheckoutCommandHandler(
		cr.newOrderUoWFactory(),
		cr.catalog,
		services.NewPricingEngine(),
	)
}

func (cr *CompositionRoot) NewUpdateStatusCommandHandler() commands.UpdateStatusCommandHandler {
	return commands.NewUpdateStatusCommandHandler(cr.newOrderUoWFactory())
}

func (cr *CompositionRoot) NewAdvanceKitchenCommandHandler() commands.AdvanceKitchenCommandHandler {
	return commands.NewAdvanceKitchenCommandHandler(cr.newOrderUoWFactory())
}

func (cr *CompositionRoot) NewGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(cr.gormDB)
}

func (cr *CompositionRoot) NewListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(cr.gormDB)
}

func (cr *CompositionRoot) NewToolRegistry() (*tools.Registry, error) {
	toolSet := tools.NewToolSet(
		cr.catalog,
		cr.NewStartOrderCommandHandler(),
		cr.NewAddPizzaCommandHandler(),
		cr.NewAddExtraCommandHandler(),
		cr.NewRemoveItemCommandHandler(),
		cr.NewCheckoutCommandHandler(),
		cr.NewUpdateStatusCommandHandler(),
		cr.NewGetOrderQueryHandler(),
	)

	return tools.BuildRegistry(toolSet)
}

func (cr *CompositionRoot) NewHTTPServer() *httpin.Server {
	return httpin.NewServer(
		cr.catalog,
		cr.NewUpdateStatusCommandHandler(),
		cr.NewGetOrderQueryHandler(),
		cr.NewListOrdersQueryHandler(),
	)
}

func (cr *CompositionRoot) NewJobManager() *jobs.JobManager {
	return jobs.NewJobManager(cr.NewAdvanceKitchenCommandHandler(), cr.logger)
}

func (cr *CompositionRoot) newOrderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return cr.uowFactory.Create()
	})
}

// FuncUoWFactory adapts a closure to the commands.UoWFactory interface.
type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

// FuncOrderUoWFactory adapts a closure to the commands.OrderUoWFactory interface.
type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
