package commands

import (
	"context"
	"errors"
	"fmt"

	"logistics/internal/core/application/snapshot"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

const (
	OrderCodeLength      = 6
	maxOrderCodeAttempts = 5
)

// CreateOrderCommandHandler registers new orders. Gates run in this order and
// the first failure wins: origin city exists, destination city exists,
// destination address lies in the destination city. Distinct cities are
// already guaranteed by NewCreateOrderCommand. The order is then
// given a unique code, persisted and appended to the cached orders list.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, geocoder, codegen.New(), store)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Println(created.Code())
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	addresses  ports.AddressValidator
	codes      ports.CodeGenerator
	snapshots  *snapshot.Store
}

func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	addresses ports.AddressValidator,
	codes ports.CodeGenerator,
	snapshots *snapshot.Store,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		addresses:  addresses,
		codes:      codes,
		snapshots:  snapshots,
	}
}

func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	orderRepo := uow.OrderRepository()

	_, destination, err := h.lookupCities(ctx, orderRepo, cmd)
	if err != nil {
		return nil, err
	}

	valid, err := h.addresses.Validate(ctx, cmd.DestinationAddress(), destination.Name)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("destination address", err)
	}
	if !valid {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"destination address",
			fmt.Errorf("%q is not an address in %s", cmd.DestinationAddress(), destination.Name),
		)
	}

	aggregate, err := order.NewOrder(
		cmd.UserID(),
		cmd.Package(),
		cmd.ProductType(),
		cmd.OriginCityID(),
		cmd.DestinationCityID(),
		cmd.DestinationAddress(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo = uow.OrderRepository()

	code, err := h.uniqueCode(ctx, orderRepo)
	if err != nil {
		return nil, err
	}
	if err = aggregate.SetCode(code); err != nil {
		return nil, err
	}

	created, err := orderRepo.Add(ctx, aggregate)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.snapshots.AppendOrder(ctx, snapshot.NewEntry(created, nil))

	return created, nil
}

// lookupCities resolves both cities concurrently. When both lookups fail the
// origin error is reported, matching the sequential gate order.
func (h *CreateOrderCommandHandler) lookupCities(
	ctx context.Context,
	repo ports.OrderRepository,
	cmd CreateOrderCommand,
) (order.City, order.City, error) {
	var (
		origin, destination       order.City
		originErr, destinationErr error
		g                         errgroup.Group
	)

	g.Go(func() error {
		origin, originErr = repo.GetCity(ctx, cmd.OriginCityID())
		return originErr
	})
	g.Go(func() error {
		destination, destinationErr = repo.GetCity(ctx, cmd.DestinationCityID())
		return destinationErr
	})

	if err := g.Wait(); err != nil {
		if originErr != nil {
			return order.City{}, order.City{}, originErr
		}
		return order.City{}, order.City{}, destinationErr
	}

	return origin, destination, nil
}

// uniqueCode draws codes until one is not taken by an existing order.
func (h *CreateOrderCommandHandler) uniqueCode(ctx context.Context, repo ports.OrderRepository) (string, error) {
	for range maxOrderCodeAttempts {
		code, err := h.codes.Generate(OrderCodeLength)
		if err != nil {
			return "", err
		}

		_, err = repo.GetByCode(ctx, code)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return code, nil
		}
		if err != nil {
			return "", err
		}
	}

	return "", errs.NewConflictError(
		fmt.Sprintf("no free order code after %d attempts", maxOrderCodeAttempts),
	)
}
