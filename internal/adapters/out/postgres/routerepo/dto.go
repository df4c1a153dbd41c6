// Package routerepo persists routes, the orders attached to them and the
// vehicles that serve them.
package routerepo

import (
	"time"

	"logistics/internal/core/domain/model/route"
)

type RouteDTO struct {
	ID                     int64  `gorm:"primaryKey;autoIncrement"`
	OriginCityID           int64  `gorm:"not null"`
	DestinationCityID      int64  `gorm:"not null"`
	VehicleID              int64  `gorm:"not null;index"`
	AssignedCarrierID      *int64 `gorm:"index"`
	EstimatedGeneralFinish *time.Time
	StartDateTime          *time.Time
}

func (RouteDTO) TableName() string {
	return "routes"
}

// RouteOrderDTO keeps the assignment order of a route's orders.
type RouteOrderDTO struct {
	RouteID  int64 `gorm:"primaryKey"`
	OrderID  int64 `gorm:"primaryKey;uniqueIndex"`
	Position int   `gorm:"not null"`
}

func (RouteOrderDTO) TableName() string {
	return "route_orders"
}

type VehicleDTO struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	Plate     string  `gorm:"size:16"`
	Capacity  float64 `gorm:"not null"`
	MaxVolume float64 `gorm:"not null"`
	MaxWidth  float64 `gorm:"not null"`
	MaxHeight float64 `gorm:"not null"`
	MaxLength float64 `gorm:"not null"`
}

func (VehicleDTO) TableName() string {
	return "vehicles"
}

func toDomain(dto RouteDTO, orders []RouteOrderDTO) (*route.Route, error) {
	assigned := make([]int64, 0, len(orders))
	for _, o := range orders {
		assigned = append(assigned, o.OrderID)
	}

	return route.RestoreRoute(route.Record{
		ID:                     dto.ID,
		OriginCityID:           dto.OriginCityID,
		DestinationCityID:      dto.DestinationCityID,
		VehicleID:              dto.VehicleID,
		AssignedCarrierID:      dto.AssignedCarrierID,
		AssignedOrders:         assigned,
		EstimatedGeneralFinish: dto.EstimatedGeneralFinish,
		StartTime:              dto.StartDateTime,
	})
}

func profileOf(dto VehicleDTO) (route.VehicleProfile, error) {
	return route.NewVehicleProfile(dto.Capacity, dto.MaxVolume, dto.MaxWidth, dto.MaxHeight, dto.MaxLength)
}
