package queries

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrQueryOrdersQueryIsNotConstructed = errors.New(
	"QueryOrdersQuery must be created via NewQueryOrdersQuery constructor",
)

// OrdersFilter holds the optional criteria of QueryOrdersQuery. Nil or empty
// fields do not constrain the result.
type OrdersFilter struct {
	Code              string
	StartDate         *time.Time
	EndDate           *time.Time
	AssignedCarrierID *int64
	Status            string
}

// QueryOrdersQuery searches the cached orders list. All set criteria must
// match.
type QueryOrdersQuery struct {
	filter OrdersFilter

	guard guard.ConstructorGuard
}

func NewQueryOrdersQuery(filter OrdersFilter) (QueryOrdersQuery, error) {
	filter.Code = strings.TrimSpace(filter.Code)
	filter.Status = strings.TrimSpace(filter.Status)

	var errList []error
	if filter.Status != "" {
		errList = append(errList, order.Status(filter.Status).Validate())
	}
	if filter.AssignedCarrierID != nil && *filter.AssignedCarrierID <= 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError(
			"assigned carrier id", *filter.AssignedCarrierID, 1, "∞"))
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("date range",
			fmt.Errorf("end %s is before start %s",
				filter.EndDate.Format(time.RFC3339), filter.StartDate.Format(time.RFC3339))))
	}
	if err := errors.Join(errList...); err != nil {
		return QueryOrdersQuery{}, err
	}

	return QueryOrdersQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q QueryOrdersQuery) Validate() error {
	return q.guard.Validate(ErrQueryOrdersQueryIsNotConstructed)
}

func (q QueryOrdersQuery) Filter() OrdersFilter { return q.filter }
