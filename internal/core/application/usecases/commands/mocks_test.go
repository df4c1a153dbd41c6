package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"logistics/internal/core/application/snapshot"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) (*order.Order, error) {
	args := m.Called(ctx, o)
	created, _ := args.Get(0).(*order.Order)
	return created, args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(
	ctx context.Context, id int64, status order.Status, deliveredAt *time.Time,
) (*order.Order, error) {
	args := m.Called(ctx, id, status, deliveredAt)
	updated, _ := args.Get(0).(*order.Order)
	return updated, args.Error(1)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetByCode(ctx context.Context, code string) (*order.Order, error) {
	args := m.Called(ctx, code)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetCity(ctx context.Context, id int64) (order.City, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(order.City), args.Error(1)
}

type MockRouteRepository struct{ mock.Mock }

func (m *MockRouteRepository) Get(ctx context.Context, id int64) (*route.Route, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*route.Route)
	return r, args.Error(1)
}

func (m *MockRouteRepository) GetForUpdate(ctx context.Context, id int64) (*route.Route, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*route.Route)
	return r, args.Error(1)
}

func (m *MockRouteRepository) AssignOrder(ctx context.Context, r *route.Route, o *order.Order) error {
	return m.Called(ctx, r, o).Error(0)
}

func (m *MockRouteRepository) AssignCarrier(ctx context.Context, r *route.Route) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRouteRepository) ListPackages(ctx context.Context, routeID int64) ([]kernel.Package, error) {
	args := m.Called(ctx, routeID)
	pkgs, _ := args.Get(0).([]kernel.Package)
	return pkgs, args.Error(1)
}

func (m *MockRouteRepository) GetVehicleProfile(ctx context.Context, routeID int64) (route.VehicleProfile, error) {
	args := m.Called(ctx, routeID)
	return args.Get(0).(route.VehicleProfile), args.Error(1)
}

type MockCarrierRepository struct{ mock.Mock }

func (m *MockCarrierRepository) IsAvailable(ctx context.Context, carrierID int64) (bool, error) {
	args := m.Called(ctx, carrierID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCarrierRepository) SetAvailability(ctx context.Context, carrierID int64, available bool) error {
	return m.Called(ctx, carrierID, available).Error(0)
}

func (m *MockCarrierRepository) AllOrdersDelivered(ctx context.Context, carrierID int64) (bool, error) {
	args := m.Called(ctx, carrierID)
	return args.Bool(0), args.Error(1)
}

// MockUoW satisfies every unit-of-work shape used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) RouteRepository() ports.RouteRepository {
	return m.Called().Get(0).(ports.RouteRepository)
}

func (m *MockUoW) CarrierRepository() ports.CarrierRepository {
	return m.Called().Get(0).(ports.CarrierRepository)
}

type MockOrderUoWFactory struct{ uow *MockUoW }

func (f MockOrderUoWFactory) Create() commands.OrderUoW { return f.uow }

type MockRouteUoWFactory struct{ uow *MockUoW }

func (f MockRouteUoWFactory) Create() commands.RouteUoW { return f.uow }

type MockCarrierUoWFactory struct{ uow *MockUoW }

func (f MockCarrierUoWFactory) Create() commands.CarrierUoW { return f.uow }

type MockUoWFactory struct{ uow *MockUoW }

func (f MockUoWFactory) Create() commands.UoW { return f.uow }

type MockCache struct{ mock.Mock }

func (m *MockCache) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockCache) SetWithTTL(ctx context.Context, key string, ttl time.Duration, value string) error {
	return m.Called(ctx, key, ttl, value).Error(0)
}

type MockAddressValidator struct{ mock.Mock }

func (m *MockAddressValidator) Validate(ctx context.Context, address, city string) (bool, error) {
	args := m.Called(ctx, address, city)
	return args.Bool(0), args.Error(1)
}

type MockCodeGenerator struct{ mock.Mock }

func (m *MockCodeGenerator) Generate(length int) (string, error) {
	args := m.Called(length)
	return args.String(0), args.Error(1)
}

func newStore(cache ports.Cache) *snapshot.Store {
	return snapshot.NewStore(cache, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

type orderFixture struct {
	id                int64
	code              string
	origin, dest      int64
	status            order.Status
	routeID           *int64
	pkg               kernel.Package
	deliveredAt       *time.Time
	estimatedDelivery *time.Time
}

func restoreOrder(t *testing.T, f orderFixture) *order.Order {
	t.Helper()
	if f.origin == 0 {
		f.origin, f.dest = 1, 2
	}
	if f.status == "" {
		f.status = order.Pending
	}
	if f.pkg == (kernel.Package{}) {
		f.pkg = kernel.MustNewPackage(4, 10, 10, 10)
	}
	o, err := order.RestoreOrder(order.Record{
		ID:                    f.id,
		Code:                  f.code,
		UserID:                1,
		Package:               f.pkg,
		ProductType:           "books",
		OriginCityID:          f.origin,
		DestinationCityID:     f.dest,
		DestinationAddress:    "Calle 10 # 5-51",
		Status:                f.status,
		EstimatedDeliveryTime: f.estimatedDelivery,
		DeliveredAt:           f.deliveredAt,
		RouteID:               f.routeID,
	})
	require.NoError(t, err)
	return o
}

func restoreRoute(t *testing.T, rec route.Record) *route.Route {
	t.Helper()
	if rec.OriginCityID == 0 {
		rec.OriginCityID, rec.DestinationCityID = 1, 2
	}
	if rec.VehicleID == 0 {
		rec.VehicleID = 3
	}
	r, err := route.RestoreRoute(rec)
	require.NoError(t, err)
	return r
}

func ptr[T any](v T) *T { return &v }

// allowCache accepts any cache traffic for tests that do not inspect it.
func allowCache(cache *MockCache) {
	cache.On("Get", mock.Anything, mock.Anything).Return("", false, nil).Maybe()
	cache.On("SetWithTTL", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
}
