package cmd

import (
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/adapters/out/postgres/accountrepo"
	"fooddelivery/internal/adapters/out/postgres/cartrepo"
	"fooddelivery/internal/adapters/out/postgres/offerrepo"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	carts       ports.CartProvider
	discounts   ports.DiscountEvaluator
	accounts    ports.AccountDirectory
	restaurants ports.RestaurantDirectory
	publisher   ports.EventPublisher
	deliveryFee float64
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, publisher ports.EventPublisher) CompositionRoot {
	accounts := accountrepo.NewGormAccountRepository(gormDB)
	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		carts:       cartrepo.NewGormCartRepository(gormDB),
		discounts:   offerrepo.NewGormOfferRepository(gormDB),
		accounts:    accounts,
		restaurants: accounts,
		publisher:   publisher,
		deliveryFee: config.DeliveryFee,
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.carts, c.discounts, c.restaurants, c.publisher, c.deliveryFee)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDriverCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateAcceptAssignmentCommandHandler() commands.AcceptAssignmentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptAssignmentCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateDeclineAssignmentCommandHandler() commands.DeclineAssignmentCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeclineAssignmentCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateAdvanceDeliveryCommandHandler() commands.AdvanceDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceDeliveryCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateSetDriverOnlineCommandHandler() commands.SetDriverOnlineCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetDriverOnlineCommandHandler(f, c.accounts)
}

func (c *CompositionRoot) CreateReplaceOrderCommandHandler() commands.ReplaceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReplaceOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateReconcileDriversCommandHandler() commands.ReconcileDriversCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewReconcileDriversCommandHandler(f)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRestaurantOrdersQueryHandler() queries.GetRestaurantOrdersQueryHandler {
	return queries.NewGetRestaurantOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverOrdersQueryHandler() queries.GetDriverOrdersQueryHandler {
	return queries.NewGetDriverOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableDriversQueryHandler() queries.GetAvailableDriversQueryHandler {
	return queries.NewGetAvailableDriversQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
