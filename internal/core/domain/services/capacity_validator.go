package services

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
)

// CapacityValidator checks a vehicle profile against the packages already on
// a route plus a candidate package. It performs no I/O.
//
// Example usage:
//
//	v := services.NewCapacityValidator()
//	if !v.CanCarry(profile, onRoute, candidate) {
//	    return errs.NewValueIsInvalidError("package")
//	}
type CapacityValidator struct{}

func NewCapacityValidator() CapacityValidator {
	return CapacityValidator{}
}

// CanCarry is false when any single package exceeds a per-axis maximum, when
// the summed weight exceeds the vehicle capacity or when the summed volume
// exceeds the vehicle max volume. Sums include the candidate.
func (CapacityValidator) CanCarry(profile route.VehicleProfile, existing []kernel.Package, candidate kernel.Package) bool {
	var totalWeight, totalVolume float64

	for _, p := range append(existing[:len(existing):len(existing)], candidate) {
		if p.Width() > profile.MaxWidth() ||
			p.Height() > profile.MaxHeight() ||
			p.Length() > profile.MaxLength() {
			return false
		}
		totalWeight += p.Weight()
		totalVolume += p.Volume()
	}

	return totalWeight <= profile.Capacity() && totalVolume <= profile.MaxVolume()
}
