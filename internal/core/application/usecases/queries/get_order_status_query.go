package queries

import (
	"errors"
	"strings"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrGetOrderStatusQueryIsNotConstructed = errors.New(
	"GetOrderStatusQuery must be created via NewGetOrderStatusQuery constructor",
)

// GetOrderStatusQuery looks up the current status of an order by its public
// code.
//
// Example:
//
//	query, err := NewGetOrderStatusQuery("AB12CD")
//	if err != nil {
//	    return err
//	}
//	resp, err := handler.Handle(ctx, query)
type GetOrderStatusQuery struct {
	code string

	guard guard.ConstructorGuard
}

func NewGetOrderStatusQuery(code string) (GetOrderStatusQuery, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return GetOrderStatusQuery{}, errs.NewValueIsRequiredError("order code")
	}
	return GetOrderStatusQuery{code: code, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusQueryIsNotConstructed)
}

func (q GetOrderStatusQuery) Code() string { return q.code }

type GetOrderStatusQueryResponse struct {
	Code   string
	Status string
	Cached bool
}
