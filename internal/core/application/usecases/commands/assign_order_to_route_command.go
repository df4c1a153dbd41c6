package commands

import (
	"errors"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrAssignOrderToRouteCommandIsNotConstructed = errors.New(
	"AssignOrderToRouteCommand must be created via NewAssignOrderToRouteCommand constructor",
)

type AssignOrderToRouteCommand struct { //nolint:recvcheck //using for validation
	routeID int64
	orderID int64

	guard guard.ConstructorGuard
}

func NewAssignOrderToRouteCommand(routeID, orderID int64) (AssignOrderToRouteCommand, error) {
	var errList []error
	if routeID <= 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("route id", routeID, 1, "∞"))
	}
	if orderID <= 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("order id", orderID, 1, "∞"))
	}
	if err := errors.Join(errList...); err != nil {
		return AssignOrderToRouteCommand{}, err
	}

	return AssignOrderToRouteCommand{
		routeID: routeID,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AssignOrderToRouteCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderToRouteCommandIsNotConstructed)
}

func (c AssignOrderToRouteCommand) RouteID() int64 { return c.routeID }
func (c AssignOrderToRouteCommand) OrderID() int64 { return c.orderID }
