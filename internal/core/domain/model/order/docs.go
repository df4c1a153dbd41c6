// Package order provides the Order aggregate and its lifecycle.
//
// The package includes:
//   - Order: a single shipment with its package, cities, destination address and status
//   - Status: the lifecycle state machine (En espera -> En transito -> Entregado)
//   - City: the reference record orders point at
//
// Key business rules:
//   - An order belongs to a user and has strictly positive package dimensions
//   - Origin and destination cities are distinct
//   - An order is assigned to at most one route, which moves it to En transito
//   - Delivery happens exactly once and records the delivered-at timestamp
package order
