package commands

import (
	"context"
	"fmt"
	"time"

	"logistics/internal/core/application/snapshot"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
)

// AssignOrderToRouteCommandHandler attaches a pending order to a route.
//
// Gates, first failure wins:
//  1. route exists (NotFound)
//  2. order exists (NotFound)
//  3. order has no route yet (Conflict)
//  4. order and route connect the same cities (InvalidInput)
//  5. route has not started (Conflict)
//  6. the route's vehicle can carry every package on it plus this one (InvalidInput)
//
// Route and order rows are locked for the whole transaction, so the capacity
// check and the commit see the same set of packages.
type AssignOrderToRouteCommandHandler struct {
	uowFactory RouteUoWFactory
	capacity   services.CapacityValidator
	snapshots  *snapshot.Store
	now        func() time.Time
}

func NewAssignOrderToRouteCommandHandler(
	uowFactory RouteUoWFactory,
	capacity services.CapacityValidator,
	snapshots *snapshot.Store,
	now func() time.Time,
) AssignOrderToRouteCommandHandler {
	return AssignOrderToRouteCommandHandler{
		uowFactory: uowFactory,
		capacity:   capacity,
		snapshots:  snapshots,
		now:        now,
	}
}

func (h *AssignOrderToRouteCommandHandler) Handle(
	ctx context.Context,
	cmd AssignOrderToRouteCommand,
) (*route.Route, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	routeRepo := uow.RouteRepository()
	orderRepo := uow.OrderRepository()

	target, err := routeRepo.GetForUpdate(ctx, cmd.RouteID())
	if err != nil {
		return nil, err
	}

	candidate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if candidate.IsRouted() {
		return nil, order.ErrOrderAlreadyRouted
	}

	if !target.Connects(candidate.OriginCityID(), candidate.DestinationCityID()) {
		return nil, errs.NewValueIsInvalidErrorWithCause("order cities", fmt.Errorf(
			"order %d travels %d->%d but route %d travels %d->%d",
			candidate.ID(), candidate.OriginCityID(), candidate.DestinationCityID(),
			target.ID(), target.OriginCityID(), target.DestinationCityID(),
		))
	}

	now := h.now()
	if target.HasStarted(now) {
		return nil, route.ErrRouteAlreadyStarted
	}

	onRoute, err := routeRepo.ListPackages(ctx, target.ID())
	if err != nil {
		return nil, err
	}

	profile, err := routeRepo.GetVehicleProfile(ctx, target.ID())
	if err != nil {
		return nil, err
	}

	if !h.capacity.CanCarry(profile, onRoute, candidate.Package()) {
		return nil, errs.NewValueIsInvalidErrorWithCause("package", fmt.Errorf(
			"vehicle %d of route %d cannot carry %s", target.VehicleID(), target.ID(), candidate.Package(),
		))
	}

	if err = candidate.AssignToRoute(target.ID(), target.EstimatedGeneralFinish()); err != nil {
		return nil, err
	}
	if err = target.AddOrder(candidate.ID(), now); err != nil {
		return nil, err
	}

	if err = routeRepo.AssignOrder(ctx, target, candidate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.snapshots.PutStatus(ctx, candidate.Code(), candidate.Status())
	h.snapshots.AppendOrder(ctx, snapshot.NewEntry(candidate, target))

	return target, nil
}
