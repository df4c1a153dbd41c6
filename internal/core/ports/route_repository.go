package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/route"
)

// RouteRepository is the authoritative store for routes and the vehicles
// serving them.
type RouteRepository interface {
	Get(ctx context.Context, id int64) (*route.Route, error)

	// GetForUpdate locks the route row so that concurrent assignments to the
	// same route are serialized until the transaction ends.
	GetForUpdate(ctx context.Context, id int64) (*route.Route, error)

	// AssignOrder persists an order that was attached to the route: the
	// order's route id, status and estimated delivery time, and the route's
	// assigned-orders list.
	AssignOrder(ctx context.Context, aggregate *route.Route, assigned *order.Order) error

	// AssignCarrier persists the route's assigned carrier id.
	AssignCarrier(ctx context.Context, aggregate *route.Route) error

	// ListPackages returns the packages of every order assigned to the route.
	ListPackages(ctx context.Context, routeID int64) ([]kernel.Package, error)

	GetVehicleProfile(ctx context.Context, routeID int64) (route.VehicleProfile, error)
}
