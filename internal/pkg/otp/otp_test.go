package otp

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFourDigit_Generate(t *testing.T) {
	gen := NewFourDigit()

	for range 500 {
		code, err := gen.Generate()
		require.NoError(t, err)
		require.Len(t, code, 4)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1000)
		assert.LessOrEqual(t, n, 9999)
	}
}

func TestNewNumeric_InvalidRange(t *testing.T) {
	_, err := NewNumeric(10, 9)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestNumeric_SingleValueRange(t *testing.T) {
	gen, err := NewNumeric(4242, 4242)
	require.NoError(t, err)

	code, err := gen.Generate()
	require.NoError(t, err)
	assert.Equal(t, "4242", code)
}
