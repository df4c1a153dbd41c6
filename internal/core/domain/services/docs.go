// Package services provides domain services whose rules span more than one
// aggregate.
//
// The package includes:
//   - CapacityValidator: decides whether a vehicle can carry a set of packages
package services
