package queries

import (
	"context"

	"logistics/internal/core/application/snapshot"
	"logistics/internal/core/domain/model/order"
)

// OrderReader is the read side the status lookup falls back to on a cache miss.
type OrderReader interface {
	GetByCode(ctx context.Context, code string) (*order.Order, error)
}

// GetOrderStatusQueryHandler answers from the cache when it can. On a miss it
// reads the store and caches the status for snapshot.StatusTTL. Unknown codes
// are not cached.
type GetOrderStatusQueryHandler struct {
	orders    OrderReader
	snapshots *snapshot.Store
}

func NewGetOrderStatusQueryHandler(orders OrderReader, snapshots *snapshot.Store) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{orders: orders, snapshots: snapshots}
}

func (h GetOrderStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusQuery,
) (GetOrderStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	if status, found := h.snapshots.Status(ctx, query.Code()); found {
		return GetOrderStatusQueryResponse{Code: query.Code(), Status: status, Cached: true}, nil
	}

	o, err := h.orders.GetByCode(ctx, query.Code())
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	h.snapshots.PutStatus(ctx, o.Code(), o.Status())

	return GetOrderStatusQueryResponse{Code: o.Code(), Status: o.Status().String()}, nil
}
