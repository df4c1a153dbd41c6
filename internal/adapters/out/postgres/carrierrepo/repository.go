package carrierrepo

import (
	"context"

	"logistics/internal/adapters/out/postgres/dberr"
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/routerepo"
	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCarrierRepository implements ports.CarrierRepository using GORM.
type GormCarrierRepository struct {
	db *gorm.DB
}

func NewGormCarrierRepository(db *gorm.DB) *GormCarrierRepository {
	return &GormCarrierRepository{db: db}
}

// IsAvailable locks the user row and reports whether it is a carrier that
// can take a route. Unknown users are simply unavailable.
func (r *GormCarrierRepository) IsAvailable(ctx context.Context, carrierID int64) (bool, error) {
	var dto UserDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Take(&dto, "id = ?", carrierID).Error
	if dberr.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, dberr.Wrap("get carrier", err, "")
	}

	c, err := toDomain(dto)
	if err != nil {
		return false, err
	}
	return c.CanTakeRoute(), nil
}

func (r *GormCarrierRepository) SetAvailability(ctx context.Context, carrierID int64, available bool) error {
	result := r.db.WithContext(ctx).
		Model(&UserDTO{}).
		Where("id = ? AND role = ?", carrierID, carrier.RoleCarrier).
		Update("available", available)
	if result.Error != nil {
		return dberr.Wrap("set carrier availability", result.Error, "")
	}
	if result.RowsAffected == 0 {
		exists, err := r.exists(ctx, carrierID)
		if err != nil {
			return err
		}
		if !exists {
			return errs.NewObjectNotFoundError("carrier", carrierID)
		}
	}
	return nil
}

// AllOrdersDelivered counts undelivered orders on the carrier's routes.
func (r *GormCarrierRepository) AllOrdersDelivered(ctx context.Context, carrierID int64) (bool, error) {
	routes := r.db.Model(&routerepo.RouteDTO{}).Select("id").Where("assigned_carrier_id = ?", carrierID)

	var pending int64
	err := r.db.WithContext(ctx).
		Model(&orderrepo.OrderDTO{}).
		Where("route_id IN (?) AND status <> ?", routes, order.Delivered.String()).
		Count(&pending).Error
	if err != nil {
		return false, dberr.Wrap("count carrier orders", err, "")
	}
	return pending == 0, nil
}

// exists tells a no-op update (MySQL reports unchanged rows as unaffected)
// apart from a missing carrier.
func (r *GormCarrierRepository) exists(ctx context.Context, carrierID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&UserDTO{}).
		Where("id = ? AND role = ?", carrierID, carrier.RoleCarrier).
		Count(&count).Error
	if err != nil {
		return false, dberr.Wrap("get carrier", err, "")
	}
	return count > 0, nil
}
