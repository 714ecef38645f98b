package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHashAndVerify(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost, "pepper")

	hashed, err := h.Hash("s3cret-pw")
	require.NoError(t, err)

	assert.True(t, h.Verify(string(hashed), "s3cret-pw"))
	assert.False(t, h.Verify(string(hashed), "wrong-pw"))
}

func TestBcryptPepperMismatch(t *testing.T) {
	h1 := NewBcrypt(bcrypt.MinCost, "pepper-a")
	h2 := NewBcrypt(bcrypt.MinCost, "pepper-b")

	hashed, err := h1.Hash("s3cret-pw")
	require.NoError(t, err)

	assert.False(t, h2.Verify(string(hashed), "s3cret-pw"))
}
