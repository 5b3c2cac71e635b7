package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered (v7) identifiers for request and run
// IDs.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	return g.New().String()
}

// New returns a v7 UUID, or a random v4 UUID if the v7 clock read fails.
func (g *UUIDGenerator) New() uuid.UUID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return v7
}
