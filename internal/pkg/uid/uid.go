// Package uid generates identifiers: numeric snowflake IDs for rows and
// string IDs for tokens and correlation.
package uid

import "github.com/google/uuid"

// NumberID generates sortable numeric identifiers.
type NumberID interface {
	Generate() int64
}

// StringID generates string identifiers.
type StringID interface {
	Generate() string
}

// UUID generates UUIDv7 strings, which sort by creation time. It is used for
// correlation IDs and the jti claim.
type UUID struct{}

func NewUUID() UUID {
	return UUID{}
}

func (UUID) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
