package commands

import (
	"errors"
	"time"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand closes an order. DeliveredAt is optional; the handler
// uses its clock when it is nil.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	orderID     int64
	deliveredAt *time.Time

	guard guard.ConstructorGuard
}

func NewMarkDeliveredCommand(orderID int64, deliveredAt *time.Time) (MarkDeliveredCommand, error) {
	if orderID <= 0 {
		return MarkDeliveredCommand{}, errs.NewValueIsOutOfRangeError("order id", orderID, 1, "∞")
	}
	if deliveredAt != nil && deliveredAt.IsZero() {
		return MarkDeliveredCommand{}, errs.NewValueIsInvalidError("delivered at")
	}

	return MarkDeliveredCommand{
		orderID:     orderID,
		deliveredAt: deliveredAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

func (c MarkDeliveredCommand) OrderID() int64          { return c.orderID }
func (c MarkDeliveredCommand) DeliveredAt() *time.Time { return c.deliveredAt }
