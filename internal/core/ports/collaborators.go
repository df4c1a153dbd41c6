package ports

import (
	"context"
	"time"
)

// AddressValidator is the geocoding oracle used when creating orders.
// It answers whether address lies in the named city.
type AddressValidator interface {
	Validate(ctx context.Context, address, city string) (bool, error)
}

// CodeGenerator produces random alphanumeric order codes.
type CodeGenerator interface {
	Generate(length int) (string, error)
}

// Cache is a best-effort key/value store with per-key expiry. A missing key
// is reported as found == false with a nil error.
type Cache interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	SetWithTTL(ctx context.Context, key string, ttl time.Duration, value string) error
}
