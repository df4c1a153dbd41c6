package http_test

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/core/application/snapshot"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/route"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCreateOrder struct{ mock.Mock }

func (m *MockCreateOrder) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockMarkDelivered struct{ mock.Mock }

func (m *MockMarkDelivered) Handle(ctx context.Context, cmd commands.MarkDeliveredCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockAssignOrder struct{ mock.Mock }

func (m *MockAssignOrder) Handle(ctx context.Context, cmd commands.AssignOrderToRouteCommand) (*route.Route, error) {
	args := m.Called(ctx, cmd)
	r, _ := args.Get(0).(*route.Route)
	return r, args.Error(1)
}

type MockAssignCarrier struct{ mock.Mock }

func (m *MockAssignCarrier) Handle(ctx context.Context, cmd commands.AssignCarrierToRouteCommand) (*route.Route, error) {
	args := m.Called(ctx, cmd)
	r, _ := args.Get(0).(*route.Route)
	return r, args.Error(1)
}

type MockGetOrderStatus struct{ mock.Mock }

func (m *MockGetOrderStatus) Handle(
	ctx context.Context,
	query queries.GetOrderStatusQuery,
) (queries.GetOrderStatusQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetOrderStatusQueryResponse), args.Error(1)
}

type MockQueryOrders struct{ mock.Mock }

func (m *MockQueryOrders) Handle(ctx context.Context, query queries.QueryOrdersQuery) ([]snapshot.OrderView, error) {
	args := m.Called(ctx, query)
	views, _ := args.Get(0).([]snapshot.OrderView)
	return views, args.Error(1)
}

type deps struct {
	createOrder   *MockCreateOrder
	markDelivered *MockMarkDelivered
	assignOrder   *MockAssignOrder
	assignCarrier *MockAssignCarrier
	orderStatus   *MockGetOrderStatus
	queryOrders   *MockQueryOrders
	echo          *echo.Echo
}

func newDeps(t *testing.T) *deps {
	t.Helper()
	d := &deps{
		createOrder:   &MockCreateOrder{},
		markDelivered: &MockMarkDelivered{},
		assignOrder:   &MockAssignOrder{},
		assignCarrier: &MockAssignCarrier{},
		orderStatus:   &MockGetOrderStatus{},
		queryOrders:   &MockQueryOrders{},
		echo:          echo.New(),
	}

	server := httpin.NewServer(httpin.Handlers{
		CreateOrder:          d.createOrder,
		MarkDelivered:        d.markDelivered,
		AssignOrderToRoute:   d.assignOrder,
		AssignCarrierToRoute: d.assignCarrier,
		GetOrderStatus:       d.orderStatus,
		QueryOrders:          d.queryOrders,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, server.Register(d.echo))

	t.Cleanup(func() {
		d.createOrder.AssertExpectations(t)
		d.markDelivered.AssertExpectations(t)
		d.assignOrder.AssertExpectations(t)
		d.assignCarrier.AssertExpectations(t)
		d.orderStatus.AssertExpectations(t)
		d.queryOrders.AssertExpectations(t)
	})
	return d
}

func (d *deps) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	d.echo.ServeHTTP(rec, req)
	return rec
}

func restoredOrder(t *testing.T, status order.Status, routeID *int64, deliveredAt *time.Time) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(order.Record{
		ID:                 7,
		Code:               "AB12CD",
		UserID:             20,
		Package:            kernel.MustNewPackage(4, 10, 10, 10),
		ProductType:        "books",
		OriginCityID:       1,
		DestinationCityID:  2,
		DestinationAddress: "Calle 10 # 5-51",
		Status:             status,
		DeliveredAt:        deliveredAt,
		RouteID:            routeID,
	})
	require.NoError(t, err)
	return o
}

func restoredRoute(t *testing.T, carrierID *int64, orders []int64) *route.Route {
	t.Helper()
	r, err := route.RestoreRoute(route.Record{
		ID:                5,
		OriginCityID:      1,
		DestinationCityID: 2,
		VehicleID:         3,
		AssignedCarrierID: carrierID,
		AssignedOrders:    orders,
	})
	require.NoError(t, err)
	return r
}

func ptr[T any](v T) *T { return &v }
