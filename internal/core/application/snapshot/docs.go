// Package snapshot owns the layout of the secondary cache: key names, TTLs
// and the JSON envelopes stored under them.
//
// Keys:
//   - order:<code>:status  status string, 30 minutes
//   - orders               JSON array of {deliveredAt, order, route}, 5 days
//   - keyOrder:<id>        JSON {deliveredAt, order} of a delivered order, 5 days
//
// The cache is best-effort. Store never returns write failures to callers; it
// logs them and moves on. Malformed payloads read back as empty.
package snapshot
