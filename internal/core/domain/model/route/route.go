package route

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"logistics/internal/pkg/errs"
)

var (
	ErrRouteIsNotConstructed = errors.New("Route must be created via RestoreRoute constructor")
	ErrRouteAlreadyStarted   = errs.NewConflictError("route already started")
)

// Route is a scheduled vehicle trip between two cities carrying any number
// of orders. Assigned orders keep their insertion order.
type Route struct {
	id                     int64
	originCityID           int64
	destinationCityID      int64
	vehicleID              int64
	assignedCarrierID      *int64
	assignedOrders         []int64
	estimatedGeneralFinish *time.Time
	startTime              *time.Time

	isConstructed bool
}

// Record is the persisted state consumed by RestoreRoute.
type Record struct {
	ID                     int64
	OriginCityID           int64
	DestinationCityID      int64
	VehicleID              int64
	AssignedCarrierID      *int64
	AssignedOrders         []int64
	EstimatedGeneralFinish *time.Time
	StartTime              *time.Time
}

// RestoreRoute rebuilds a route read from storage and checks its invariants:
// distinct cities, a positive vehicle id and, when present, a positive
// carrier id.
func RestoreRoute(r Record) (*Route, error) {
	if r.ID <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("route id", r.ID, 1, "∞")
	}

	var errList []error
	if r.OriginCityID == r.DestinationCityID {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"route cities", fmt.Errorf("origin and destination are both %d", r.OriginCityID)))
	}
	if r.VehicleID <= 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("vehicle id", r.VehicleID, 1, "∞"))
	}
	if r.AssignedCarrierID != nil && *r.AssignedCarrierID <= 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("assigned carrier id", *r.AssignedCarrierID, 1, "∞"))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &Route{
		id:                     r.ID,
		originCityID:           r.OriginCityID,
		destinationCityID:      r.DestinationCityID,
		vehicleID:              r.VehicleID,
		assignedCarrierID:      r.AssignedCarrierID,
		assignedOrders:         slices.Clone(r.AssignedOrders),
		estimatedGeneralFinish: r.EstimatedGeneralFinish,
		startTime:              r.StartTime,
		isConstructed:          true,
	}, nil
}

func (r *Route) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRouteIsNotConstructed
	}
	return nil
}

// IsValid mirrors the invariants enforced by RestoreRoute.
func (r *Route) IsValid() bool {
	return r != nil &&
		r.originCityID != r.destinationCityID &&
		r.vehicleID > 0 &&
		(r.assignedCarrierID == nil || *r.assignedCarrierID > 0)
}

func (r *Route) ID() int64                          { return r.id }
func (r *Route) OriginCityID() int64                { return r.originCityID }
func (r *Route) DestinationCityID() int64           { return r.destinationCityID }
func (r *Route) VehicleID() int64                   { return r.vehicleID }
func (r *Route) AssignedCarrierID() *int64          { return r.assignedCarrierID }
func (r *Route) EstimatedGeneralFinish() *time.Time { return r.estimatedGeneralFinish }
func (r *Route) StartTime() *time.Time              { return r.startTime }

// AssignedOrders returns a copy of the assigned order ids in insertion order.
func (r *Route) AssignedOrders() []int64 {
	return slices.Clone(r.assignedOrders)
}

// HasStarted reports whether the scheduled start is at or before now. A route
// without a start time never counts as started.
func (r *Route) HasStarted(now time.Time) bool {
	return r.startTime != nil && !now.Before(*r.startTime)
}

// Connects reports whether the route runs exactly from origin to destination.
func (r *Route) Connects(originCityID, destinationCityID int64) bool {
	return r.originCityID == originCityID && r.destinationCityID == destinationCityID
}

// AddOrder appends an order id. Starting routes are closed to new orders.
func (r *Route) AddOrder(orderID int64, now time.Time) error {
	if orderID <= 0 {
		return errs.NewValueIsOutOfRangeError("order id", orderID, 1, "∞")
	}
	if r.HasStarted(now) {
		return ErrRouteAlreadyStarted
	}
	if slices.Contains(r.assignedOrders, orderID) {
		return errs.NewConflictError(fmt.Sprintf("order %d is already on route %d", orderID, r.id))
	}
	r.assignedOrders = append(r.assignedOrders, orderID)
	return nil
}

// AssignCarrier sets or replaces the carrier driving this route.
func (r *Route) AssignCarrier(carrierID int64) error {
	if carrierID <= 0 {
		return errs.NewValueIsOutOfRangeError("carrier id", carrierID, 1, "∞")
	}
	r.assignedCarrierID = &carrierID
	return nil
}
