package queries

import (
	"context"

	"logistics/internal/core/application/snapshot"
)

// QueryOrdersQueryHandler filters the cached orders list. It never touches
// the authoritative store; a missing or malformed list yields no orders.
type QueryOrdersQueryHandler struct {
	snapshots *snapshot.Store
}

func NewQueryOrdersQueryHandler(snapshots *snapshot.Store) QueryOrdersQueryHandler {
	return QueryOrdersQueryHandler{snapshots: snapshots}
}

// Handle returns the matching orders in list order.
func (h QueryOrdersQueryHandler) Handle(ctx context.Context, query QueryOrdersQuery) ([]snapshot.OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	filter := query.Filter()
	result := make([]snapshot.OrderView, 0)
	for _, entry := range h.snapshots.Orders(ctx) {
		if filter.matches(entry) {
			result = append(result, entry.Order)
		}
	}
	return result, nil
}

func (f OrdersFilter) matches(entry snapshot.Entry) bool {
	if f.Code != "" && entry.Order.Code != f.Code {
		return false
	}
	if f.Status != "" && entry.Order.Status != f.Status {
		return false
	}
	if f.StartDate != nil || f.EndDate != nil {
		if entry.DeliveredAt == nil {
			return false
		}
		if f.StartDate != nil && entry.DeliveredAt.Before(*f.StartDate) {
			return false
		}
		if f.EndDate != nil && entry.DeliveredAt.After(*f.EndDate) {
			return false
		}
	}
	if f.AssignedCarrierID != nil {
		if entry.Route == nil || entry.Route.AssignedCarrierID == nil {
			return false
		}
		if *entry.Route.AssignedCarrierID != *f.AssignedCarrierID {
			return false
		}
	}
	return true
}
