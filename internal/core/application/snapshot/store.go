package snapshot

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
)

// Store reads and writes cache entries on behalf of use cases.
type Store struct {
	cache  ports.Cache
	logger *slog.Logger
}

func NewStore(cache ports.Cache, logger *slog.Logger) *Store {
	return &Store{
		cache:  cache,
		logger: logger.With("component", "snapshot"),
	}
}

// Status returns the cached status for code. Read failures are logged and
// reported as a miss.
func (s *Store) Status(ctx context.Context, code string) (string, bool) {
	key := StatusKey(code)
	value, found, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.WarnContext(ctx, "cache read failed", "key", key, "error", err)
		return "", false
	}
	return value, found
}

func (s *Store) PutStatus(ctx context.Context, code string, status order.Status) {
	s.set(ctx, StatusKey(code), StatusTTL, status.String())
}

// AppendOrder upserts entry into the orders list with a read-modify-write.
// A missing or malformed list is replaced by a fresh one. When the list
// cannot be read the write is skipped, so a cache hiccup never truncates it.
// Concurrent writers can overwrite each other.
func (s *Store) AppendOrder(ctx context.Context, entry Entry) {
	entries, err := s.load(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "cache read failed, orders list left unchanged",
			"key", OrdersKey, "order_id", entry.Order.ID, "error", err)
		return
	}
	entries = Upsert(entries, entry)

	payload, err := json.Marshal(entries)
	if err != nil {
		s.logger.WarnContext(ctx, "orders list encode failed", "error", err)
		return
	}
	s.set(ctx, OrdersKey, ListTTL, string(payload))
}

// Orders returns the cached orders list, or an empty list when the key is
// missing, unreadable or malformed.
func (s *Store) Orders(ctx context.Context) []Entry {
	entries, err := s.load(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "cache read failed", "key", OrdersKey, "error", err)
		return []Entry{}
	}
	return entries
}

// load reads the orders list. Only a failed read is an error: a missing or
// malformed list comes back empty.
func (s *Store) load(ctx context.Context) ([]Entry, error) {
	raw, found, err := s.cache.Get(ctx, OrdersKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return []Entry{}, nil
	}

	entries, err := ParseList(raw)
	if err != nil {
		s.logger.WarnContext(ctx, "discarding malformed orders list", "error", err)
		return []Entry{}, nil
	}
	return entries, nil
}

func (s *Store) PutDelivered(ctx context.Context, o *order.Order) {
	payload, err := json.Marshal(Delivered{
		DeliveredAt: o.DeliveredAt(),
		Order:       FromOrder(o),
	})
	if err != nil {
		s.logger.WarnContext(ctx, "delivered snapshot encode failed", "order_id", o.ID(), "error", err)
		return
	}
	s.set(ctx, DeliveredKey(o.ID()), ListTTL, string(payload))
}

func (s *Store) set(ctx context.Context, key string, ttl time.Duration, value string) {
	if err := s.cache.SetWithTTL(ctx, key, ttl, value); err != nil {
		s.logger.WarnContext(ctx, "cache write failed", "key", key, "error", err)
	}
}
