package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrUserIDIsRequired = errs.NewValueIsRequiredError("user id")
)

// CreateOrderCommand represents a request to register a new shipment.
// The order code is not part of the request; it is generated on creation.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(userID, 2, 30, 20, 10, "books", 1, 2, "Calle 10 # 5-51")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID             int64
	pkg                kernel.Package
	productType        string
	originCityID       int64
	destinationCityID  int64
	destinationAddress string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the caller id, the package dimensions and
// the city pair. Same origin and destination is rejected here, before any
// lookup happens.
func NewCreateOrderCommand(
	userID int64,
	weight, width, height, length float64,
	productType string,
	originCityID, destinationCityID int64,
	destinationAddress string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		productType:        strings.TrimSpace(productType),
		destinationAddress: strings.TrimSpace(destinationAddress),
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setPackage(weight, width, height, length),
		cmd.setCities(originCityID, destinationCityID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) UserID() int64              { return c.userID }
func (c CreateOrderCommand) Package() kernel.Package    { return c.pkg }
func (c CreateOrderCommand) ProductType() string        { return c.productType }
func (c CreateOrderCommand) OriginCityID() int64        { return c.originCityID }
func (c CreateOrderCommand) DestinationCityID() int64   { return c.destinationCityID }
func (c CreateOrderCommand) DestinationAddress() string { return c.destinationAddress }

func (c *CreateOrderCommand) setUserID(userID int64) error {
	if userID <= 0 {
		return ErrUserIDIsRequired
	}
	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setPackage(weight, width, height, length float64) error {
	pkg, err := kernel.NewPackage(weight, width, height, length)
	if err != nil {
		return err
	}
	c.pkg = pkg
	return nil
}

func (c *CreateOrderCommand) setCities(originCityID, destinationCityID int64) error {
	if originCityID == destinationCityID {
		return order.ErrSameOriginDestination
	}
	if originCityID <= 0 {
		return errs.NewValueIsOutOfRangeError("origin city id", originCityID, 1, "∞")
	}
	if destinationCityID <= 0 {
		return errs.NewValueIsOutOfRangeError("destination city id", destinationCityID, 1, "∞")
	}
	c.originCityID = originCityID
	c.destinationCityID = destinationCityID
	return nil
}
