// internal/model/notes.go
package model

import (
	appErrors "github.com/tablebook/reservations-backend/internal/errors"
)

// normalizeNotes applies the shared notes rule for both entities: empty-ish
// input (nil, "", numeric zero, false) collapses to "", anything else must
// already be a string. The emptiness check runs before the type check, so a
// zero or a false counts as an empty note rather than a type error.
func normalizeNotes(val any) (string, error) {
	switch v := val.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case bool:
		if !v {
			return "", nil
		}
	case int:
		if v == 0 {
			return "", nil
		}
	case float64:
		if v == 0 {
			return "", nil
		}
	}
	return "", appErrors.NewBadRequest("Input must be a string!")
}
