package snapshot_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"logistics/internal/core/application/snapshot"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCache struct{ mock.Mock }

func (m *MockCache) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockCache) SetWithTTL(ctx context.Context, key string, ttl time.Duration, value string) error {
	args := m.Called(ctx, key, ttl, value)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func restoreOrder(t *testing.T, id int64, code string, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(order.Record{
		ID: id, Code: code, UserID: 1, Package: kernel.MustNewPackage(1, 2, 3, 4),
		OriginCityID: 1, DestinationCityID: 2, DestinationAddress: "Calle 1", Status: status,
	})
	require.NoError(t, err)
	return o
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "order:AB12CD:status", snapshot.StatusKey("AB12CD"))
	assert.Equal(t, "keyOrder:42", snapshot.DeliveredKey(42))
	assert.Equal(t, "orders", snapshot.OrdersKey)
	assert.Equal(t, 30*time.Minute, snapshot.StatusTTL)
	assert.Equal(t, 5*24*time.Hour, snapshot.ListTTL)
}

func TestParseList(t *testing.T) {
	t.Run("valid list", func(t *testing.T) {
		entries, err := snapshot.ParseList(`[{"deliveredAt":null,"order":{"id":1,"code":"A","status":"En espera"},"route":null}]`)

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, int64(1), entries[0].Order.ID)
		assert.Nil(t, entries[0].Route)
		assert.Nil(t, entries[0].DeliveredAt)
	})

	t.Run("empty array", func(t *testing.T) {
		entries, err := snapshot.ParseList(`[]`)

		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	for _, raw := range []string{"not json", "null", `{"order":{}}`, `[{"deliveredAt":"yesterday"}]`} {
		t.Run("malformed "+raw, func(t *testing.T) {
			_, err := snapshot.ParseList(raw)

			require.ErrorIs(t, err, errs.ErrUnexpected)
			assert.Equal(t, errs.KindUnexpected, errs.Kind(err))
		})
	}
}

func TestUpsert(t *testing.T) {
	list := []snapshot.Entry{
		{Order: snapshot.OrderView{ID: 1, Status: "En espera"}},
		{Order: snapshot.OrderView{ID: 2, Status: "En espera"}},
	}

	list = snapshot.Upsert(list, snapshot.Entry{Order: snapshot.OrderView{ID: 1, Status: "En transito"}})
	require.Len(t, list, 2)
	assert.Equal(t, int64(1), list[0].Order.ID, "replaced entry keeps its position")
	assert.Equal(t, "En transito", list[0].Order.Status)

	list = snapshot.Upsert(list, snapshot.Entry{Order: snapshot.OrderView{ID: 3}})
	require.Len(t, list, 3)
	assert.Equal(t, int64(3), list[2].Order.ID)
}

func TestStore_Status(t *testing.T) {
	ctx := t.Context()

	t.Run("hit", func(t *testing.T) {
		cache := new(MockCache)
		cache.On("Get", ctx, "order:X:status").Return("En transito", true, nil).Once()

		value, found := snapshot.NewStore(cache, discardLogger()).Status(ctx, "X")

		assert.True(t, found)
		assert.Equal(t, "En transito", value)
		cache.AssertExpectations(t)
	})

	t.Run("read error is a miss", func(t *testing.T) {
		cache := new(MockCache)
		cache.On("Get", ctx, "order:X:status").Return("", false, errors.New("dial tcp: refused")).Once()

		_, found := snapshot.NewStore(cache, discardLogger()).Status(ctx, "X")

		assert.False(t, found)
	})
}

func TestStore_PutStatus_IgnoresWriteFailure(t *testing.T) {
	ctx := t.Context()
	cache := new(MockCache)
	cache.On("SetWithTTL", ctx, "order:X:status", snapshot.StatusTTL, "Entregado").
		Return(errors.New("READONLY")).Once()

	assert.NotPanics(t, func() {
		snapshot.NewStore(cache, discardLogger()).PutStatus(ctx, "X", order.Delivered)
	})
	cache.AssertExpectations(t)
}

func TestStore_AppendOrder(t *testing.T) {
	ctx := t.Context()

	t.Run("resets malformed list", func(t *testing.T) {
		o := restoreOrder(t, 5, "CODE05", order.Pending)
		cache := new(MockCache)
		cache.On("Get", ctx, snapshot.OrdersKey).Return("{{{", true, nil).Once()
		cache.On("SetWithTTL", ctx, snapshot.OrdersKey, snapshot.ListTTL, mock.AnythingOfType("string")).
			Return(nil).Once()

		snapshot.NewStore(cache, discardLogger()).AppendOrder(ctx, snapshot.NewEntry(o, nil))

		written := cache.Calls[1].Arguments.String(3)
		entries, err := snapshot.ParseList(written)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "CODE05", entries[0].Order.Code)
		assert.Nil(t, entries[0].Route)
	})

	t.Run("read error leaves the stored list alone", func(t *testing.T) {
		o := restoreOrder(t, 7, "CODE07", order.Pending)
		cache := new(MockCache)
		cache.On("Get", ctx, snapshot.OrdersKey).Return("", false, errors.New("i/o timeout")).Once()

		snapshot.NewStore(cache, discardLogger()).AppendOrder(ctx, snapshot.NewEntry(o, nil))

		cache.AssertExpectations(t)
		cache.AssertNotCalled(t, "SetWithTTL", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing list starts a new one", func(t *testing.T) {
		o := restoreOrder(t, 7, "CODE07", order.Pending)
		cache := new(MockCache)
		cache.On("Get", ctx, snapshot.OrdersKey).Return("", false, nil).Once()
		cache.On("SetWithTTL", ctx, snapshot.OrdersKey, snapshot.ListTTL, mock.AnythingOfType("string")).
			Return(nil).Once()

		snapshot.NewStore(cache, discardLogger()).AppendOrder(ctx, snapshot.NewEntry(o, nil))

		entries, err := snapshot.ParseList(cache.Calls[1].Arguments.String(3))
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, int64(7), entries[0].Order.ID)
	})

	t.Run("replaces existing entry for the same order", func(t *testing.T) {
		pending := restoreOrder(t, 5, "CODE05", order.Pending)
		other := restoreOrder(t, 6, "CODE06", order.Pending)
		current, err := json.Marshal([]snapshot.Entry{snapshot.NewEntry(pending, nil), snapshot.NewEntry(other, nil)})
		require.NoError(t, err)

		r, err := route.RestoreRoute(route.Record{ID: 9, OriginCityID: 1, DestinationCityID: 2, VehicleID: 1})
		require.NoError(t, err)
		require.NoError(t, pending.AssignToRoute(9, nil))

		cache := new(MockCache)
		cache.On("Get", ctx, snapshot.OrdersKey).Return(string(current), true, nil).Once()
		cache.On("SetWithTTL", ctx, snapshot.OrdersKey, snapshot.ListTTL, mock.AnythingOfType("string")).
			Return(nil).Once()

		snapshot.NewStore(cache, discardLogger()).AppendOrder(ctx, snapshot.NewEntry(pending, r))

		entries, err := snapshot.ParseList(cache.Calls[1].Arguments.String(3))
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, int64(5), entries[0].Order.ID)
		assert.Equal(t, "En transito", entries[0].Order.Status)
		require.NotNil(t, entries[0].Route)
		assert.Equal(t, int64(9), entries[0].Route.ID)
		assert.Equal(t, int64(6), entries[1].Order.ID)
	})
}

func TestStore_Orders_EmptyOnMissOrError(t *testing.T) {
	ctx := t.Context()

	miss := new(MockCache)
	miss.On("Get", ctx, snapshot.OrdersKey).Return("", false, nil).Once()
	assert.Empty(t, snapshot.NewStore(miss, discardLogger()).Orders(ctx))

	broken := new(MockCache)
	broken.On("Get", ctx, snapshot.OrdersKey).Return("", false, errors.New("timeout")).Once()
	assert.Empty(t, snapshot.NewStore(broken, discardLogger()).Orders(ctx))
}

func TestStore_PutDelivered(t *testing.T) {
	ctx := t.Context()
	o := restoreOrder(t, 8, "CODE08", order.InTransit)
	at := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, o.Deliver(at))

	cache := new(MockCache)
	cache.On("SetWithTTL", ctx, "keyOrder:8", snapshot.ListTTL, mock.AnythingOfType("string")).Return(nil).Once()

	snapshot.NewStore(cache, discardLogger()).PutDelivered(ctx, o)

	var payload snapshot.Delivered
	require.NoError(t, json.Unmarshal([]byte(cache.Calls[0].Arguments.String(3)), &payload))
	require.NotNil(t, payload.DeliveredAt)
	assert.True(t, at.Equal(*payload.DeliveredAt))
	assert.Equal(t, "Entregado", payload.Order.Status)
	cache.AssertExpectations(t)
}
