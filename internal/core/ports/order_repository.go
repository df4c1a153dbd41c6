// Package ports defines the contracts between the logistics core and its
// infrastructure: the authoritative store, the cache and the external
// oracles used while creating orders.
package ports

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/order"
)

// OrderRepository is the authoritative store for orders and cities.
// Missing records are reported with errs.ObjectNotFoundError; driver
// failures with errs.StorageFailureError.
type OrderRepository interface {
	// Add inserts a new order and returns the stored entity with its id.
	// A duplicate code is reported as errs.ConflictError.
	Add(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// UpdateStatus writes the status and delivered-at of an existing order
	// and returns the updated entity.
	UpdateStatus(ctx context.Context, id int64, status order.Status, deliveredAt *time.Time) (*order.Order, error)

	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetForUpdate is Get with the row locked until the surrounding
	// transaction ends.
	GetForUpdate(ctx context.Context, id int64) (*order.Order, error)

	GetByCode(ctx context.Context, code string) (*order.Order, error)

	GetCity(ctx context.Context, id int64) (order.City, error)
}
