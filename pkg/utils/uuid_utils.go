package utils

import (
	"github.com/google/uuid"
)

var newUUIDv7 = uuid.NewV7

// GenerateUUIDv7 generates a new time-ordered UUID v7
func GenerateUUIDv7() uuid.UUID {
	id, err := newUUIDv7()
	if err != nil {
		return uuid.New()
	}
	return id
}

// ParseID parses a path id; blank input is reported as uuid.Nil with an error.
func ParseID(raw string) (uuid.UUID, error) {
	return uuid.Parse(raw)
}
