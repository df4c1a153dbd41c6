package order

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status is the lifecycle state of an order. The string values are the ones
// stored in the database and in cache entries.
//
// State transitions:
//
//	Pending ──> InTransit ──> Delivered
//	   │                         ▲
//	   └─────────────────────────┘
type Status string

const (
	Pending   Status = "En espera"
	InTransit Status = "En transito"
	Delivered Status = "Entregado"
)

// ParseStatus accepts only the three known status strings.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

func (s Status) Validate() error {
	switch s {
	case Pending, InTransit, Delivered:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsDelivered() bool {
	return s == Delivered
}

// Ship moves a pending order onto a route.
func (s Status) Ship() (Status, error) {
	if s != Pending {
		return "", errs.NewConflictError(fmt.Sprintf("order in status %q cannot be put in transit", string(s)))
	}
	return InTransit, nil
}

// Deliver is allowed from any status except Delivered itself.
func (s Status) Deliver() (Status, error) {
	if s == Delivered {
		return "", ErrOrderAlreadyDelivered
	}
	if err := s.Validate(); err != nil {
		return "", err
	}
	return Delivered, nil
}
