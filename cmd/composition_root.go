package cmd

import (
	"log/slog"
	"time"

	"logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/codegen"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/core/application/snapshot"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	snapshots  *snapshot.Store
	addresses  ports.AddressValidator
	logger     *slog.Logger
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	cache ports.Cache,
	addresses ports.AddressValidator,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		snapshots:  snapshot.NewStore(cache, logger),
		addresses:  addresses,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.addresses, codegen.New(), c.snapshots)
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkDeliveredCommandHandler(f, c.snapshots, time.Now)
}

func (c *CompositionRoot) CreateAssignOrderToRouteCommandHandler() commands.AssignOrderToRouteCommandHandler {
	var f commands.RouteUoWFactory = FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignOrderToRouteCommandHandler(f, services.NewCapacityValidator(), c.snapshots, time.Now)
}

func (c *CompositionRoot) CreateAssignCarrierToRouteCommandHandler() commands.AssignCarrierToRouteCommandHandler {
	var f commands.CarrierUoWFactory = FuncCarrierUoWFactory(func() commands.CarrierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCarrierToRouteCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderStatusQueryHandler() queries.GetOrderStatusQueryHandler {
	return queries.NewGetOrderStatusQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB), c.snapshots)
}

func (c *CompositionRoot) CreateQueryOrdersQueryHandler() queries.QueryOrdersQueryHandler {
	return queries.NewQueryOrdersQueryHandler(c.snapshots)
}

// CreateHTTPServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	createOrder := c.CreateCreateOrderCommandHandler()
	markDelivered := c.CreateMarkDeliveredCommandHandler()
	assignOrder := c.CreateAssignOrderToRouteCommandHandler()
	assignCarrier := c.CreateAssignCarrierToRouteCommandHandler()

	return http.NewServer(http.Handlers{
		CreateOrder:          &createOrder,
		MarkDelivered:        &markDelivered,
		AssignOrderToRoute:   &assignOrder,
		AssignCarrierToRoute: &assignCarrier,
		GetOrderStatus:       c.CreateGetOrderStatusQueryHandler(),
		QueryOrders:          c.CreateQueryOrdersQueryHandler(),
	}, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncRouteUoWFactory func() commands.RouteUoW

func (f FuncRouteUoWFactory) Create() commands.RouteUoW {
	return f()
}

type FuncCarrierUoWFactory func() commands.CarrierUoW

func (f FuncCarrierUoWFactory) Create() commands.CarrierUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
