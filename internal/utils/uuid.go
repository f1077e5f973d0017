package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered record ids. Version 7 UUIDs sort by
// creation time, which keeps locally created records in insertion order.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
