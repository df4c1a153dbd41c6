package ports

import "context"

// CarrierRepository reads and flips carrier availability on user records.
type CarrierRepository interface {
	// IsAvailable is false for unknown users, for users without the carrier
	// role and for carriers already driving a route. Inside a transaction the
	// user row stays locked until it ends.
	IsAvailable(ctx context.Context, carrierID int64) (bool, error)

	SetAvailability(ctx context.Context, carrierID int64, available bool) error

	// AllOrdersDelivered is true when every order on every route assigned
	// to the carrier is delivered.
	AllOrdersDelivered(ctx context.Context, carrierID int64) (bool, error)
}
