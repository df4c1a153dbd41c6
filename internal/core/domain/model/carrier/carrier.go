// Package carrier models the users that drive routes.
package carrier

import (
	"errors"
	"strings"

	"logistics/internal/pkg/errs"
)

// RoleCarrier is the user role allowed to drive routes.
const RoleCarrier = "carrier"

var ErrCarrierIsNotConstructed = errors.New("Carrier must be created via RestoreCarrier constructor")

// Carrier is a user with the carrier role. It can drive at most one active
// route at a time, tracked by the availability flag.
type Carrier struct {
	id        int64
	name      string
	role      string
	available bool

	isConstructed bool
}

func RestoreCarrier(id int64, name, role string, available bool) (*Carrier, error) {
	if id <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("carrier id", id, 1, "∞")
	}
	return &Carrier{
		id:            id,
		name:          name,
		role:          strings.ToLower(strings.TrimSpace(role)),
		available:     available,
		isConstructed: true,
	}, nil
}

func (c *Carrier) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCarrierIsNotConstructed
	}
	return nil
}

func (c *Carrier) ID() int64       { return c.id }
func (c *Carrier) Name() string    { return c.name }
func (c *Carrier) IsCarrier() bool { return c.role == RoleCarrier }

// CanTakeRoute is true only for users with the carrier role whose
// availability flag is set.
func (c *Carrier) CanTakeRoute() bool {
	return c.IsCarrier() && c.available
}
