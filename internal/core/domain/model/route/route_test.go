package route_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestRestoreRoute(t *testing.T) {
	t.Run("valid route", func(t *testing.T) {
		r, err := route.RestoreRoute(route.Record{
			ID: 1, OriginCityID: 1, DestinationCityID: 2, VehicleID: 3,
			AssignedOrders: []int64{10, 11},
		})

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.True(t, r.IsValid())
		assert.Equal(t, []int64{10, 11}, r.AssignedOrders())
		assert.Nil(t, r.AssignedCarrierID())
	})

	testCases := []struct {
		name   string
		record route.Record
		target error
	}{
		{"missing id", route.Record{OriginCityID: 1, DestinationCityID: 2, VehicleID: 1}, errs.ErrValueIsOutOfRange},
		{"same cities", route.Record{ID: 1, OriginCityID: 2, DestinationCityID: 2, VehicleID: 1}, errs.ErrValueIsInvalid},
		{"no vehicle", route.Record{ID: 1, OriginCityID: 1, DestinationCityID: 2}, errs.ErrValueIsOutOfRange},
		{
			"non positive carrier",
			route.Record{ID: 1, OriginCityID: 1, DestinationCityID: 2, VehicleID: 1, AssignedCarrierID: ptr(int64(0))},
			errs.ErrValueIsOutOfRange,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := route.RestoreRoute(tc.record)

			require.ErrorIs(t, err, tc.target)
			assert.Nil(t, r)
		})
	}
}

func TestRoute_ZeroValue(t *testing.T) {
	var r *route.Route
	require.ErrorIs(t, r.Validate(), route.ErrRouteIsNotConstructed)
	assert.False(t, r.IsValid())
}

func TestRoute_HasStarted(t *testing.T) {
	start := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	r, err := route.RestoreRoute(route.Record{
		ID: 1, OriginCityID: 1, DestinationCityID: 2, VehicleID: 3, StartTime: &start,
	})
	require.NoError(t, err)

	assert.False(t, r.HasStarted(start.Add(-time.Second)))
	assert.True(t, r.HasStarted(start), "start time itself closes the route")
	assert.True(t, r.HasStarted(start.Add(time.Hour)))

	unscheduled, err := route.RestoreRoute(route.Record{ID: 2, OriginCityID: 1, DestinationCityID: 2, VehicleID: 3})
	require.NoError(t, err)
	assert.False(t, unscheduled.HasStarted(time.Now()))
}

func TestRoute_AddOrder(t *testing.T) {
	start := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	newRoute := func() *route.Route {
		r, err := route.RestoreRoute(route.Record{
			ID: 1, OriginCityID: 1, DestinationCityID: 2, VehicleID: 3,
			AssignedOrders: []int64{5}, StartTime: &start,
		})
		require.NoError(t, err)
		return r
	}

	t.Run("appends before start", func(t *testing.T) {
		r := newRoute()

		require.NoError(t, r.AddOrder(6, start.Add(-time.Hour)))
		assert.Equal(t, []int64{5, 6}, r.AssignedOrders())
	})

	t.Run("rejects after start", func(t *testing.T) {
		r := newRoute()

		err := r.AddOrder(6, start.Add(time.Minute))

		require.ErrorIs(t, err, route.ErrRouteAlreadyStarted)
		assert.Equal(t, errs.KindConflict, errs.Kind(err))
		assert.Equal(t, []int64{5}, r.AssignedOrders())
	})

	t.Run("rejects duplicate order", func(t *testing.T) {
		r := newRoute()

		require.ErrorIs(t, r.AddOrder(5, start.Add(-time.Hour)), errs.ErrConflict)
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		r := newRoute()
		orders := r.AssignedOrders()
		orders[0] = 99

		assert.Equal(t, []int64{5}, r.AssignedOrders())
	})
}

func TestRoute_AssignCarrier(t *testing.T) {
	r, err := route.RestoreRoute(route.Record{ID: 1, OriginCityID: 1, DestinationCityID: 2, VehicleID: 3})
	require.NoError(t, err)

	require.ErrorIs(t, r.AssignCarrier(0), errs.ErrValueIsOutOfRange)
	assert.Nil(t, r.AssignedCarrierID())

	require.NoError(t, r.AssignCarrier(42))
	assert.Equal(t, int64(42), *r.AssignedCarrierID())
}

func TestRoute_Connects(t *testing.T) {
	r, err := route.RestoreRoute(route.Record{ID: 1, OriginCityID: 1, DestinationCityID: 2, VehicleID: 3})
	require.NoError(t, err)

	assert.True(t, r.Connects(1, 2))
	assert.False(t, r.Connects(2, 1))
	assert.False(t, r.Connects(1, 3))
}

func TestNewVehicleProfile(t *testing.T) {
	v, err := route.NewVehicleProfile(10, 1000, 50, 50, 50)
	require.NoError(t, err)
	require.NoError(t, v.Validate())
	assert.InDelta(t, 10.0, v.Capacity(), 1e-9)
	assert.InDelta(t, 1000.0, v.MaxVolume(), 1e-9)

	_, err = route.NewVehicleProfile(0, 1000, 50, -1, 50)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "vehicle capacity")
	assert.Contains(t, err.Error(), "vehicle max height")

	var zero route.VehicleProfile
	require.ErrorIs(t, zero.Validate(), route.ErrVehicleProfileIsNotConstructed)
}
