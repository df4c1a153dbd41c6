// Package kernel provides the value objects shared by the order and route
// aggregates.
//
// The package includes:
//   - Package: the physical dimensions of a shipment (weight, width, height, length)
//
// Values are immutable and can only be obtained through their constructors,
// which reject any non-positive measure.
package kernel
