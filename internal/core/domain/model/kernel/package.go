package kernel

import (
	"errors"
	"fmt"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage constructor")

// Package is the physical description of a shipment. Weight is expressed in
// the same unit as vehicle weight capacity and the three axes in the same
// unit as vehicle maximum dimensions.
type Package struct {
	weight float64
	width  float64
	height float64
	length float64

	guard guard.ConstructorGuard
}

// NewPackage validates that every measure is strictly positive.
//
// Example:
//
//	pkg, err := kernel.NewPackage(5, 10, 10, 10)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(pkg.Volume()) // 1000
func NewPackage(weight, width, height, length float64) (Package, error) {
	if err := errors.Join(
		validateMeasure("package weight", weight),
		validateMeasure("package width", width),
		validateMeasure("package height", height),
		validateMeasure("package length", length),
	); err != nil {
		return Package{}, err
	}

	return Package{
		weight: weight,
		width:  width,
		height: height,
		length: length,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// MustNewPackage panics on invalid input. Intended for tests and fixtures.
func MustNewPackage(weight, width, height, length float64) Package {
	p, err := NewPackage(weight, width, height, length)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Package) Validate() error {
	return p.guard.Validate(ErrPackageIsNotConstructed)
}

func (p Package) Weight() float64 { return p.weight }
func (p Package) Width() float64  { return p.width }
func (p Package) Height() float64 { return p.height }
func (p Package) Length() float64 { return p.length }

// Volume is width × height × length.
func (p Package) Volume() float64 {
	return p.width * p.height * p.length
}

func (p Package) Equals(other Package) bool {
	return p.weight == other.weight &&
		p.width == other.width &&
		p.height == other.height &&
		p.length == other.length
}

func (p Package) String() string {
	return fmt.Sprintf("%gkg %gx%gx%g", p.weight, p.width, p.height, p.length)
}

func validateMeasure(name string, value float64) error {
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%g is not greater than 0", value))
	}
	return nil
}
