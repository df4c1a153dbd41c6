package orderrepo

import (
	"context"
	"fmt"
	"time"

	"logistics/internal/adapters/out/postgres/dberr"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts a new order. The id is assigned by the store; a code that is
// already taken is reported as a Conflict.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}
	if aggregate.Code() == "" {
		return nil, errs.NewValueIsRequiredError("order code")
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, dberr.Wrap("insert order", err, fmt.Sprintf("order code %q already exists", dto.Code))
	}

	return toDomain(dto)
}

// UpdateStatus writes status and delivered-at and reads the row back.
func (r *GormOrderRepository) UpdateStatus(
	ctx context.Context,
	id int64,
	status order.Status,
	deliveredAt *time.Time,
) (*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status.String(), "delivered_at": deliveredAt})
	if result.Error != nil {
		return nil, dberr.Wrap("update order status", result.Error, "")
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("order", id)
	}

	return r.Get(ctx, id)
}

func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	return r.take(r.db.WithContext(ctx), "order", id, "id = ?", id)
}

// GetForUpdate locks the order row until the transaction ends.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id int64) (*order.Order, error) {
	locked := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"})
	return r.take(locked, "order", id, "id = ?", id)
}

func (r *GormOrderRepository) GetByCode(ctx context.Context, code string) (*order.Order, error) {
	return r.take(r.db.WithContext(ctx), "order code", code, "code = ?", code)
}

func (r *GormOrderRepository) GetCity(ctx context.Context, id int64) (order.City, error) {
	var dto CityDTO
	if err := r.db.WithContext(ctx).Take(&dto, "id = ?", id).Error; err != nil {
		return order.City{}, dberr.Lookup("city", id, err)
	}
	return order.City{ID: dto.ID, Name: dto.Name}, nil
}

func (r *GormOrderRepository) take(db *gorm.DB, param string, id any, query string, args ...any) (*order.Order, error) {
	var dto OrderDTO
	if err := db.Where(query, args...).Take(&dto).Error; err != nil {
		return nil, dberr.Lookup(param, id, err)
	}
	return toDomain(dto)
}
