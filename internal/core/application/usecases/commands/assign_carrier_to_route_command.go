package commands

import (
	"errors"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrAssignCarrierToRouteCommandIsNotConstructed = errors.New(
	"AssignCarrierToRouteCommand must be created via NewAssignCarrierToRouteCommand constructor",
)

type AssignCarrierToRouteCommand struct { //nolint:recvcheck //using for validation
	routeID   int64
	carrierID int64

	guard guard.ConstructorGuard
}

func NewAssignCarrierToRouteCommand(routeID, carrierID int64) (AssignCarrierToRouteCommand, error) {
	var errList []error
	if routeID <= 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("route id", routeID, 1, "∞"))
	}
	if carrierID <= 0 {
		errList = append(errList, errs.NewValueIsRequiredError("carrier id"))
	}
	if err := errors.Join(errList...); err != nil {
		return AssignCarrierToRouteCommand{}, err
	}

	return AssignCarrierToRouteCommand{
		routeID:   routeID,
		carrierID: carrierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AssignCarrierToRouteCommand) Validate() error {
	return c.guard.Validate(ErrAssignCarrierToRouteCommandIsNotConstructed)
}

func (c AssignCarrierToRouteCommand) RouteID() int64   { return c.routeID }
func (c AssignCarrierToRouteCommand) CarrierID() int64 { return c.carrierID }
