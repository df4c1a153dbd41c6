package queries_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"logistics/internal/core/application/snapshot"
	"logistics/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockCache struct{ mock.Mock }

func (m *MockCache) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockCache) SetWithTTL(ctx context.Context, key string, ttl time.Duration, value string) error {
	return m.Called(ctx, key, ttl, value).Error(0)
}

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) GetByCode(ctx context.Context, code string) (*order.Order, error) {
	args := m.Called(ctx, code)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func newStore(cache *MockCache) *snapshot.Store {
	return snapshot.NewStore(cache, slog.New(slog.NewTextHandler(io.Discard, nil)))
}
