package order

// City is a reference record resolved from the authoritative store. Orders
// keep only city ids; the name is needed for address validation.
type City struct {
	ID   int64
	Name string
}
