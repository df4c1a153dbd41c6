// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	CarrierRepoFactory interface {
		CarrierRepository() ports.CarrierRepository
	}

	// OrderUoW is used by order creation, which touches only orders and cities.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// RouteUoW covers attaching orders to routes.
	RouteUoW interface {
		TxManager
		OrderRepoFactory
		RouteRepoFactory
	}

	RouteUoWFactory interface {
		Create() RouteUoW
	}

	// CarrierUoW covers attaching carriers to routes.
	CarrierUoW interface {
		TxManager
		RouteRepoFactory
		CarrierRepoFactory
	}

	CarrierUoWFactory interface {
		Create() CarrierUoW
	}

	// UoW spans orders, routes and carriers. Used by delivery, which updates
	// an order and may release the carrier of its route.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   carrierRepo := uow.CarrierRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		RouteRepoFactory
		CarrierRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
