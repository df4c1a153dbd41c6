package postgres_test

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
)

func (suite *StoreIntegrationTestSuite) TestOrderRepository_AddAndRead() {
	ctx := context.Background()
	repo := suite.factory.Create().OrderRepository()

	created := suite.addOrder("AB12CD", 4)
	suite.Positive(created.ID())
	suite.Equal("AB12CD", created.Code())
	suite.Equal(order.Pending, created.Status())
	suite.False(created.CreatedAt().IsZero())

	byID, err := repo.Get(ctx, created.ID())
	suite.Require().NoError(err)
	suite.Equal(created.Code(), byID.Code())
	suite.True(byID.Package().Equals(kernel.MustNewPackage(4, 10, 10, 10)))

	byCode, err := repo.GetByCode(ctx, "AB12CD")
	suite.Require().NoError(err)
	suite.Equal(created.ID(), byCode.ID())
}

func (suite *StoreIntegrationTestSuite) TestOrderRepository_DuplicateCodeIsConflict() {
	ctx := context.Background()
	suite.addOrder("DUP001", 4)

	_, err := suite.factory.Create().OrderRepository().Add(ctx, suite.newOrder("DUP001", 2))

	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *StoreIntegrationTestSuite) TestOrderRepository_NotFound() {
	ctx := context.Background()
	repo := suite.factory.Create().OrderRepository()

	_, err := repo.Get(ctx, 404)
	suite.Equal(errs.KindNotFound, errs.Kind(err))

	_, err = repo.GetByCode(ctx, "NOPE00")
	suite.Equal(errs.KindNotFound, errs.Kind(err))

	_, err = repo.UpdateStatus(ctx, 404, order.Delivered, nil)
	suite.Equal(errs.KindNotFound, errs.Kind(err))

	_, err = repo.GetCity(ctx, 99)
	suite.Equal(errs.KindNotFound, errs.Kind(err))
}

func (suite *StoreIntegrationTestSuite) TestOrderRepository_GetCity() {
	city, err := suite.factory.Create().OrderRepository().GetCity(context.Background(), medellin)

	suite.Require().NoError(err)
	suite.Equal(order.City{ID: medellin, Name: "Medellín"}, city)
}

func (suite *StoreIntegrationTestSuite) TestOrderRepository_UpdateStatus() {
	ctx := context.Background()
	created := suite.addOrder("DELIV1", 4)
	at := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

	updated, err := suite.factory.Create().OrderRepository().UpdateStatus(ctx, created.ID(), order.Delivered, &at)

	suite.Require().NoError(err)
	suite.Equal(order.Delivered, updated.Status())
	suite.Require().NotNil(updated.DeliveredAt())
	suite.True(updated.DeliveredAt().Equal(at))
}

func (suite *StoreIntegrationTestSuite) TestRouteRepository_PackagesAndProfile() {
	ctx := context.Background()
	first := suite.addOrder("PKG001", 20)
	second := suite.addOrder("PKG002", 30)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	for _, pending := range []*order.Order{first, second} {
		target, err := uow.RouteRepository().GetForUpdate(ctx, routeID)
		suite.Require().NoError(err)
		suite.Require().NoError(pending.AssignToRoute(routeID, nil))
		suite.Require().NoError(target.AddOrder(pending.ID(), time.Now()))
		suite.Require().NoError(uow.RouteRepository().AssignOrder(ctx, target, pending))
	}
	suite.Require().NoError(uow.Commit(ctx))

	repo := suite.factory.Create().RouteRepository()

	packages, err := repo.ListPackages(ctx, routeID)
	suite.Require().NoError(err)
	suite.Require().Len(packages, 2)
	suite.InDelta(20.0, packages[0].Weight(), 1e-9)
	suite.InDelta(30.0, packages[1].Weight(), 1e-9)

	profile, err := repo.GetVehicleProfile(ctx, routeID)
	suite.Require().NoError(err)
	suite.InDelta(100.0, profile.Capacity(), 1e-9)
	suite.InDelta(5000.0, profile.MaxVolume(), 1e-9)

	_, err = repo.GetVehicleProfile(ctx, 404)
	suite.Equal(errs.KindNotFound, errs.Kind(err))

	_, err = repo.Get(ctx, 404)
	suite.Equal(errs.KindNotFound, errs.Kind(err))
}

func (suite *StoreIntegrationTestSuite) TestCarrierRepository_Availability() {
	ctx := context.Background()
	repo := suite.factory.Create().CarrierRepository()

	available, err := repo.IsAvailable(ctx, carrierID)
	suite.Require().NoError(err)
	suite.True(available)

	available, err = repo.IsAvailable(ctx, clientID)
	suite.Require().NoError(err)
	suite.False(available, "users without the carrier role never drive routes")

	available, err = repo.IsAvailable(ctx, 404)
	suite.Require().NoError(err)
	suite.False(available)

	suite.Require().NoError(repo.SetAvailability(ctx, carrierID, false))
	available, err = repo.IsAvailable(ctx, carrierID)
	suite.Require().NoError(err)
	suite.False(available)

	suite.Equal(errs.KindNotFound, errs.Kind(repo.SetAvailability(ctx, clientID, true)))
}

func (suite *StoreIntegrationTestSuite) TestCarrierRepository_AllOrdersDelivered() {
	ctx := context.Background()
	repo := suite.factory.Create().CarrierRepository()

	idle, err := repo.AllOrdersDelivered(ctx, carrierID)
	suite.Require().NoError(err)
	suite.True(idle, "a carrier without routes has nothing pending")

	pending := suite.addOrder("CARR01", 4)
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	target, err := uow.RouteRepository().GetForUpdate(ctx, routeID)
	suite.Require().NoError(err)
	suite.Require().NoError(pending.AssignToRoute(routeID, nil))
	suite.Require().NoError(target.AddOrder(pending.ID(), time.Now()))
	suite.Require().NoError(uow.RouteRepository().AssignOrder(ctx, target, pending))
	suite.Require().NoError(target.AssignCarrier(carrierID))
	suite.Require().NoError(uow.RouteRepository().AssignCarrier(ctx, target))
	suite.Require().NoError(uow.Commit(ctx))

	idle, err = repo.AllOrdersDelivered(ctx, carrierID)
	suite.Require().NoError(err)
	suite.False(idle)

	at := time.Now().UTC()
	_, err = suite.factory.Create().OrderRepository().UpdateStatus(ctx, pending.ID(), order.Delivered, &at)
	suite.Require().NoError(err)

	idle, err = repo.AllOrdersDelivered(ctx, carrierID)
	suite.Require().NoError(err)
	suite.True(idle)
}
