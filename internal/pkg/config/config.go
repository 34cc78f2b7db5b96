// Package config exposes typed access to the service configuration.
package config

import (
	"io"
	"time"
)

// Config is the read-only view over loaded configuration used at wiring time.
//
// Implementations return the zero value for missing keys unless a default was
// registered with the loader.
type Config interface {
	io.Closer

	GetBool(key string) bool
	GetInt(key string) int
	GetInt64(key string) int64
	GetFloat64(key string) float64
	GetString(key string) string

	// GetBinary returns the base64-decoded value, or nil when decoding fails.
	GetBinary(key string) []byte

	// GetArray splits a "<a>,<b>,..." value, dropping blank elements.
	GetArray(key string) []string

	// GetSecond and GetDay interpret an integer value in the named unit.
	GetSecond(key string) time.Duration
	GetDay(key string) time.Duration
}
