package uid

import "github.com/google/uuid"

// UUID generates RFC 4122 UUID strings, preferring the time-ordered v7
// variant.
type UUID struct{}

// NewUUID returns a UUID generator.
func NewUUID() *UUID {
	return &UUID{}
}

// Generate returns a new UUID string. It falls back to a random v4 when v7
// generation fails.
func (u *UUID) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
