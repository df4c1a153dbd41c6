// Package route provides the Route aggregate and the vehicle capacity profile
// it is checked against.
//
// Routes are pre-existing scheduled trips between two cities. This package
// does not compute paths; it only guards the rules for attaching orders and a
// carrier to a route.
package route
