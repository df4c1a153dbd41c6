package snapshot

import (
	"time"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/route"
)

// OrderView is the cached JSON form of an order.
type OrderView struct {
	ID                     int64      `json:"id"`
	Code                   string     `json:"code"`
	UserID                 int64      `json:"userId"`
	PackageWeight          float64    `json:"packageWeight"`
	PackageDimensionWidth  float64    `json:"packageDimensionWidth"`
	PackageDimensionHeight float64    `json:"packageDimensionHeight"`
	PackageDimensionLength float64    `json:"packageDimensionLength"`
	TypeProduct            string     `json:"typeProduct,omitempty"`
	OriginCityID           int64      `json:"originCityId"`
	DestinationCityID      int64      `json:"destinationCityId"`
	DestinationAddress     string     `json:"destinationAddress"`
	Status                 string     `json:"status"`
	EstimatedDeliveryTime  *time.Time `json:"estimatedDeliveryTime"`
	DeliveredAt            *time.Time `json:"deliveredAt"`
	RouteID                *int64     `json:"routeId"`
}

// RouteView is the cached JSON form of a route.
type RouteView struct {
	ID                     int64      `json:"id"`
	OriginCityID           int64      `json:"originCityId"`
	DestinationCityID      int64      `json:"destinationCityId"`
	VehicleID              int64      `json:"vehicleId"`
	AssignedCarrierID      *int64     `json:"assignedCarrierId"`
	AssignedOrders         []int64    `json:"assignedOrders"`
	EstimatedGeneralFinish *time.Time `json:"estimatedGeneralFinish"`
	StartDateTime          *time.Time `json:"startDateTime"`
}

// Entry is one element of the orders list.
type Entry struct {
	DeliveredAt *time.Time `json:"deliveredAt"`
	Order       OrderView  `json:"order"`
	Route       *RouteView `json:"route"`
}

// Delivered is the keyOrder:<id> payload.
type Delivered struct {
	DeliveredAt *time.Time `json:"deliveredAt"`
	Order       OrderView  `json:"order"`
}

func FromOrder(o *order.Order) OrderView {
	pkg := o.Package()
	return OrderView{
		ID:                     o.ID(),
		Code:                   o.Code(),
		UserID:                 o.UserID(),
		PackageWeight:          pkg.Weight(),
		PackageDimensionWidth:  pkg.Width(),
		PackageDimensionHeight: pkg.Height(),
		PackageDimensionLength: pkg.Length(),
		TypeProduct:            o.ProductType(),
		OriginCityID:           o.OriginCityID(),
		DestinationCityID:      o.DestinationCityID(),
		DestinationAddress:     o.DestinationAddress(),
		Status:                 o.Status().String(),
		EstimatedDeliveryTime:  o.EstimatedDeliveryTime(),
		DeliveredAt:            o.DeliveredAt(),
		RouteID:                o.RouteID(),
	}
}

func FromRoute(r *route.Route) *RouteView {
	if r == nil {
		return nil
	}
	return &RouteView{
		ID:                     r.ID(),
		OriginCityID:           r.OriginCityID(),
		DestinationCityID:      r.DestinationCityID(),
		VehicleID:              r.VehicleID(),
		AssignedCarrierID:      r.AssignedCarrierID(),
		AssignedOrders:         r.AssignedOrders(),
		EstimatedGeneralFinish: r.EstimatedGeneralFinish(),
		StartDateTime:          r.StartTime(),
	}
}

// NewEntry wraps an order and, once routed, its route.
func NewEntry(o *order.Order, r *route.Route) Entry {
	return Entry{
		DeliveredAt: o.DeliveredAt(),
		Order:       FromOrder(o),
		Route:       FromRoute(r),
	}
}
