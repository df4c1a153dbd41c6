package routerepo

import (
	"context"
	"fmt"

	"logistics/internal/adapters/out/postgres/dberr"
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRouteRepository implements ports.RouteRepository using GORM.
type GormRouteRepository struct {
	db *gorm.DB
}

func NewGormRouteRepository(db *gorm.DB) *GormRouteRepository {
	return &GormRouteRepository{db: db}
}

func (r *GormRouteRepository) Get(ctx context.Context, id int64) (*route.Route, error) {
	return r.load(ctx, r.db.WithContext(ctx), id)
}

// GetForUpdate locks the route row. Concurrent assignments to the same route
// wait on it until the holder commits or rolls back.
func (r *GormRouteRepository) GetForUpdate(ctx context.Context, id int64) (*route.Route, error) {
	return r.load(ctx, r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// AssignOrder writes the order's route, status and estimated delivery and
// appends it to the route's order list. The order must already be attached
// to aggregate.
func (r *GormRouteRepository) AssignOrder(ctx context.Context, aggregate *route.Route, assigned *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := assigned.Validate(); err != nil {
		return err
	}

	position := -1
	for i, id := range aggregate.AssignedOrders() {
		if id == assigned.ID() {
			position = i
		}
	}
	if position < 0 || assigned.RouteID() == nil || *assigned.RouteID() != aggregate.ID() {
		return errs.NewValueIsInvalidErrorWithCause("route assignment",
			fmt.Errorf("order %d is not attached to route %d", assigned.ID(), aggregate.ID()))
	}

	db := r.db.WithContext(ctx)

	result := db.Model(&orderrepo.OrderDTO{}).
		Where("id = ?", assigned.ID()).
		Updates(map[string]any{
			"route_id":                aggregate.ID(),
			"status":                  assigned.Status().String(),
			"estimated_delivery_time": assigned.EstimatedDeliveryTime(),
		})
	if result.Error != nil {
		return dberr.Wrap("assign order to route", result.Error, "")
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", assigned.ID())
	}

	link := RouteOrderDTO{RouteID: aggregate.ID(), OrderID: assigned.ID(), Position: position}
	if err := db.Create(&link).Error; err != nil {
		return dberr.Wrap("append route order", err,
			fmt.Sprintf("order %d is already assigned to a route", assigned.ID()))
	}

	return nil
}

func (r *GormRouteRepository) AssignCarrier(ctx context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&RouteDTO{}).
		Where("id = ?", aggregate.ID()).
		Update("assigned_carrier_id", aggregate.AssignedCarrierID())
	if result.Error != nil {
		return dberr.Wrap("assign carrier to route", result.Error, "")
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("route", aggregate.ID())
	}
	return nil
}

// ListPackages returns the packages on the route in assignment order.
func (r *GormRouteRepository) ListPackages(ctx context.Context, routeID int64) ([]kernel.Package, error) {
	var dtos []orderrepo.OrderDTO
	err := r.db.WithContext(ctx).
		Joins("JOIN route_orders ON route_orders.order_id = orders.id").
		Where("route_orders.route_id = ?", routeID).
		Order("route_orders.position").
		Find(&dtos).Error
	if err != nil {
		return nil, dberr.Wrap("list route packages", err, "")
	}

	packages := make([]kernel.Package, 0, len(dtos))
	for _, dto := range dtos {
		pkg, pkgErr := orderrepo.PackageOf(dto)
		if pkgErr != nil {
			return nil, pkgErr
		}
		packages = append(packages, pkg)
	}
	return packages, nil
}

func (r *GormRouteRepository) GetVehicleProfile(ctx context.Context, routeID int64) (route.VehicleProfile, error) {
	var dto VehicleDTO
	err := r.db.WithContext(ctx).
		Joins("JOIN routes ON routes.vehicle_id = vehicles.id").
		Where("routes.id = ?", routeID).
		Take(&dto).Error
	if err != nil {
		return route.VehicleProfile{}, dberr.Lookup("vehicle of route", routeID, err)
	}
	return profileOf(dto)
}

func (r *GormRouteRepository) load(ctx context.Context, db *gorm.DB, id int64) (*route.Route, error) {
	var dto RouteDTO
	if err := db.Take(&dto, "id = ?", id).Error; err != nil {
		return nil, dberr.Lookup("route", id, err)
	}

	var orders []RouteOrderDTO
	if err := r.db.WithContext(ctx).Where("route_id = ?", id).Order("position").Find(&orders).Error; err != nil {
		return nil, dberr.Wrap("list route orders", err, "")
	}

	return toDomain(dto, orders)
}
