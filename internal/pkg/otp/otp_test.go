package otp

import (
	"testing"

	libotp "github.com/pquerna/otp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericCodeIsFixedLengthDigits(t *testing.T) {
	gen := NewNumeric(libotp.DigitsSix)

	for range 50 {
		code, err := gen.Code()
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, c := range code {
			assert.True(t, c >= '0' && c <= '9', "code %q contains non-digit", code)
		}
	}
}

func TestNumericDigitsFallback(t *testing.T) {
	gen := NewNumeric(libotp.Digits(42))
	assert.Equal(t, 6, gen.Length())

	code, err := gen.Code()
	require.NoError(t, err)
	assert.Len(t, code, 6)
}

func TestNumericEightDigits(t *testing.T) {
	gen := NewNumeric(libotp.DigitsEight)

	code, err := gen.Code()
	require.NoError(t, err)
	assert.Len(t, code, 8)
}
