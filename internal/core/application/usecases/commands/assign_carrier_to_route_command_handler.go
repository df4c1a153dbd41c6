package commands

import (
	"context"
	"fmt"

	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"
)

// AssignCarrierToRouteCommandHandler puts an available carrier on a route.
// The availability check, the route update and the availability flip run in
// one transaction with the carrier row locked, so a carrier cannot be taken
// by two routes at once.
//
// When the route already had another carrier, that carrier is released if
// none of its remaining routes carries an undelivered order.
type AssignCarrierToRouteCommandHandler struct {
	uowFactory CarrierUoWFactory
}

func NewAssignCarrierToRouteCommandHandler(uowFactory CarrierUoWFactory) AssignCarrierToRouteCommandHandler {
	return AssignCarrierToRouteCommandHandler{uowFactory: uowFactory}
}

func (h *AssignCarrierToRouteCommandHandler) Handle(
	ctx context.Context,
	cmd AssignCarrierToRouteCommand,
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
	carrierRepo := uow.CarrierRepository()

	target, err := routeRepo.GetForUpdate(ctx, cmd.RouteID())
	if err != nil {
		return nil, err
	}

	available, err := carrierRepo.IsAvailable(ctx, cmd.CarrierID())
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"carrier",
			fmt.Errorf("carrier %d is not available or does not exist", cmd.CarrierID()),
		)
	}

	previous := target.AssignedCarrierID()

	if err = target.AssignCarrier(cmd.CarrierID()); err != nil {
		return nil, err
	}
	if err = routeRepo.AssignCarrier(ctx, target); err != nil {
		return nil, err
	}
	if err = carrierRepo.SetAvailability(ctx, cmd.CarrierID(), false); err != nil {
		return nil, err
	}

	if previous != nil && *previous != cmd.CarrierID() {
		idle, idleErr := carrierRepo.AllOrdersDelivered(ctx, *previous)
		if idleErr != nil {
			return nil, idleErr
		}
		if idle {
			if err = carrierRepo.SetAvailability(ctx, *previous, true); err != nil {
				return nil, err
			}
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return target, nil
}
