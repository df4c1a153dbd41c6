package commands

import (
	"context"
	"time"

	"logistics/internal/core/application/snapshot"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
)

// MarkDeliveredCommandHandler moves an order to Entregado and releases the
// carrier of its route once every order that carrier drives is delivered.
//
// The status update, the route lookup and the carrier release share one
// transaction. An order without a resolvable route is a data fault and fails
// with NotFound, which rolls the status update back. Cache writes happen only
// after commit.
type MarkDeliveredCommandHandler struct {
	uowFactory UoWFactory
	snapshots  *snapshot.Store
	now        func() time.Time
}

func NewMarkDeliveredCommandHandler(
	uowFactory UoWFactory,
	snapshots *snapshot.Store,
	now func() time.Time,
) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
		snapshots:  snapshots,
		now:        now,
	}
}

func (h *MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	deliveredAt := h.now()
	if cmd.DeliveredAt() != nil {
		deliveredAt = *cmd.DeliveredAt()
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Deliver(deliveredAt); err != nil {
		return nil, err
	}

	updated, err := orderRepo.UpdateStatus(ctx, aggregate.ID(), aggregate.Status(), aggregate.DeliveredAt())
	if err != nil {
		return nil, err
	}

	if updated.RouteID() == nil {
		return nil, errs.NewObjectNotFoundError("route of order", updated.ID())
	}

	assignedRoute, err := uow.RouteRepository().Get(ctx, *updated.RouteID())
	if err != nil {
		return nil, err
	}

	if carrierID := assignedRoute.AssignedCarrierID(); carrierID != nil {
		carrierRepo := uow.CarrierRepository()

		allDelivered, deliveredErr := carrierRepo.AllOrdersDelivered(ctx, *carrierID)
		if deliveredErr != nil {
			return nil, deliveredErr
		}
		if allDelivered {
			if err = carrierRepo.SetAvailability(ctx, *carrierID, true); err != nil {
				return nil, err
			}
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.snapshots.PutStatus(ctx, updated.Code(), updated.Status())
	h.snapshots.PutDelivered(ctx, updated)
	h.snapshots.AppendOrder(ctx, snapshot.NewEntry(updated, assignedRoute))

	return updated, nil
}
