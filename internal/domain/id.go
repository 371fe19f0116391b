package domain

import "github.com/google/uuid"

// IsValidID reports whether id is a well-formed store identifier
// (canonical 36-character UUID form).
func IsValidID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}
