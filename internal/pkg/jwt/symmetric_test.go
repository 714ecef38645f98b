package jwt

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticClock struct{ t time.Time }

func (c staticClock) Now() time.Time { return c.t }

type staticUUID struct{}

func (staticUUID) Generate() string { return "test-token-id" }

func testConfig(now time.Time, ttl time.Duration) Config {
	return Config{
		Secret:    []byte(strings.Repeat("s", 64)),
		Issuer:    "gotix",
		Audiences: []string{"gotix-api"},
		TTL:       ttl,
		Clock:     staticClock{t: now},
		UUID:      staticUUID{},
	}
}

func TestNewHS512RejectsShortSecret(t *testing.T) {
	_, err := NewHS512(Config{Secret: []byte("too-short")})
	assert.ErrorIs(t, err, ErrSigningKeyTooShort)
}

func TestGenerateAndVerify(t *testing.T) {
	signer, err := NewHS512(testConfig(time.Now(), time.Hour))
	require.NoError(t, err)

	token, err := signer.Generate(42, "a@x.com")
	require.NoError(t, err)

	claims, err := signer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "a@x.com", claims.UserEmail)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "gotix", claims.Issuer)
}

func TestVerifyExpiredToken(t *testing.T) {
	past := time.Now().Add(-2 * time.Hour)
	signer, err := NewHS512(testConfig(past, time.Hour))
	require.NoError(t, err)

	token, err := signer.Generate(42, "a@x.com")
	require.NoError(t, err)

	_, err = signer.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyWrongSecret(t *testing.T) {
	signer, err := NewHS512(testConfig(time.Now(), time.Hour))
	require.NoError(t, err)

	other, err := NewHS512(Config{
		Secret:    []byte(strings.Repeat("x", 64)),
		Issuer:    "gotix",
		Audiences: []string{"gotix-api"},
		TTL:       time.Hour,
		Clock:     staticClock{t: time.Now()},
		UUID:      staticUUID{},
	})
	require.NoError(t, err)

	token, err := signer.Generate(42, "a@x.com")
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}
