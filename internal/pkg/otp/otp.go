package otp

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strconv"
)

// ErrInvalidRange is returned when the configured range is empty.
var ErrInvalidRange = errors.New("otp: low must be non-negative and not greater than high")

// OTP defines the contract for generating one-time codes.
type OTP interface {
	// Generate returns a fresh code.
	Generate() (string, error)
}

// Numeric generates decimal codes uniformly from [low, high].
type Numeric struct {
	low  int64
	span *big.Int
}

// NewNumeric constructs a Numeric generator over the inclusive range.
func NewNumeric(low, high int64) (*Numeric, error) {
	if low > high || low < 0 {
		return nil, ErrInvalidRange
	}

	return &Numeric{
		low:  low,
		span: big.NewInt(high - low + 1),
	}, nil
}

// NewFourDigit returns a generator for codes in [1000, 9999].
func NewFourDigit() *Numeric {
	//nolint:errcheck // the range is constant and valid
	n, _ := NewNumeric(1000, 9999)
	return n
}

// Generate returns a random code as a decimal string.
func (n *Numeric) Generate() (string, error) {
	v, err := rand.Int(rand.Reader, n.span)
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(n.low+v.Int64(), 10), nil
}
