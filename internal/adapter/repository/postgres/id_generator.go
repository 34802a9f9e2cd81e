package postgres

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/iho/nexusbank/internal/usecase"
)

// ID formats accepted by NewIDGenerator.
const (
	IDFormatULID = "ulid"
	IDFormatUUID = "uuid"
)

// ULIDGenerator generates ULID-based IDs.
type ULIDGenerator struct{}

// NewULIDGenerator creates a new ULIDGenerator.
func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{}
}

// Generate generates a new ULID.
func (g *ULIDGenerator) Generate() string {
	return ulid.Make().String()
}

// UUIDGenerator generates random (version 4) UUIDs.
type UUIDGenerator struct{}

// NewUUIDGenerator creates a new UUIDGenerator.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate generates a new UUID.
func (g *UUIDGenerator) Generate() string {
	return uuid.NewString()
}

// NewIDGenerator returns the generator for format.
func NewIDGenerator(format string) (usecase.IDGenerator, error) {
	switch format {
	case "", IDFormatULID:
		return NewULIDGenerator(), nil
	case IDFormatUUID:
		return NewUUIDGenerator(), nil
	default:
		return nil, fmt.Errorf("unknown id format %q", format)
	}
}
