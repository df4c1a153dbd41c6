package snapshot

import (
	"encoding/json"
	"errors"

	"logistics/internal/pkg/errs"
)

// ParseList decodes the orders list. Any decoding problem, including a JSON
// null or a non-array document, is reported as errs.UnexpectedError.
func ParseList(raw string) ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, errs.NewUnexpectedError("orders list", err)
	}
	if entries == nil {
		return nil, errs.NewUnexpectedError("orders list", errors.New("payload is not an array"))
	}
	return entries, nil
}

// Upsert replaces the entry with the same order id in place, keeping its
// position in the list, or appends entry when the order is not listed yet.
func Upsert(entries []Entry, entry Entry) []Entry {
	for i := range entries {
		if entries[i].Order.ID == entry.Order.ID {
			entries[i] = entry
			return entries
		}
	}
	return append(entries, entry)
}
