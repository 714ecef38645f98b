package otp

import (
	"crypto/rand"
	"encoding/base32"
	"encoding/binary"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/hotp"
)

// Generator produces one-time numeric passcodes.
type Generator interface {
	// Code returns a fresh numeric code.
	Code() (string, error)
}

// Numeric generates random numeric codes of a fixed length.
type Numeric struct {
	digits otp.Digits
}

// NewNumeric constructs a Numeric generator.
//
// If digits is not 6 or 8, it falls back to 6 digits.
func NewNumeric(digits otp.Digits) *Numeric {
	if digits != otp.DigitsSix && digits != otp.DigitsEight {
		digits = otp.DigitsSix
	}

	return &Numeric{digits: digits}
}

// Code returns a fresh numeric code.
//
// Each call draws a new secret and counter from crypto/rand and runs them
// through HOTP, so codes are independent and never predictable from one
// another.
func (n *Numeric) Code() (string, error) {
	var buf [28]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", err
	}

	secret := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(buf[:20])
	counter := binary.BigEndian.Uint64(buf[20:])

	return hotp.GenerateCodeCustom(secret, counter, hotp.ValidateOpts{
		Digits:    n.digits,
		Algorithm: otp.AlgorithmSHA1,
	})
}

// Length returns the number of digits in generated codes.
func (n *Numeric) Length() int {
	return n.digits.Length()
}
