package route

import (
	"errors"
	"fmt"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrVehicleProfileIsNotConstructed = errors.New("VehicleProfile must be created via NewVehicleProfile constructor")

// VehicleProfile holds the physical limits of the vehicle serving a route.
// It is read-only input to capacity checks.
type VehicleProfile struct {
	capacity  float64
	maxVolume float64
	maxWidth  float64
	maxHeight float64
	maxLength float64

	guard guard.ConstructorGuard
}

func NewVehicleProfile(capacity, maxVolume, maxWidth, maxHeight, maxLength float64) (VehicleProfile, error) {
	if err := errors.Join(
		validateLimit("vehicle capacity", capacity),
		validateLimit("vehicle max volume", maxVolume),
		validateLimit("vehicle max width", maxWidth),
		validateLimit("vehicle max height", maxHeight),
		validateLimit("vehicle max length", maxLength),
	); err != nil {
		return VehicleProfile{}, err
	}

	return VehicleProfile{
		capacity:  capacity,
		maxVolume: maxVolume,
		maxWidth:  maxWidth,
		maxHeight: maxHeight,
		maxLength: maxLength,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (v VehicleProfile) Validate() error {
	return v.guard.Validate(ErrVehicleProfileIsNotConstructed)
}

func (v VehicleProfile) Capacity() float64  { return v.capacity }
func (v VehicleProfile) MaxVolume() float64 { return v.maxVolume }
func (v VehicleProfile) MaxWidth() float64  { return v.maxWidth }
func (v VehicleProfile) MaxHeight() float64 { return v.maxHeight }
func (v VehicleProfile) MaxLength() float64 { return v.maxLength }

func validateLimit(name string, value float64) error {
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%g is not greater than 0", value))
	}
	return nil
}
