package identity

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/smallbiznis/partnerportal/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestVerifier(t *testing.T) *Verifier {
	t.Helper()
	verifier, err := NewVerifier(config.Config{AuthJWTSecret: testSecret})
	require.NoError(t, err)
	return verifier
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestVerifyToken_ExtractsClaims(t *testing.T) {
	verifier := newTestVerifier(t)

	signed := signToken(t, testSecret, jwt.MapClaims{
		"sub":   "user-1",
		"email": "partner@example.com",
		"role":  "admin",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	id, err := verifier.VerifyToken(signed)
	require.NoError(t, err)

	assert.Equal(t, "user-1", id.Subject)
	assert.Equal(t, "partner@example.com", id.Email)
	assert.Equal(t, "admin", id.Role)
}

func TestVerifyToken_RejectsWrongSecret(t *testing.T) {
	verifier := newTestVerifier(t)

	signed := signToken(t, "other-secret", jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := verifier.VerifyToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_RejectsExpired(t *testing.T) {
	verifier := newTestVerifier(t)

	signed := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err := verifier.VerifyToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_RequiresSubject(t *testing.T) {
	verifier := newTestVerifier(t)

	signed := signToken(t, testSecret, jwt.MapClaims{
		"email": "partner@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	_, err := verifier.VerifyToken(signed)
	assert.ErrorIs(t, err, ErrMissingClaims)
}

func TestNewVerifier_RequiresSecret(t *testing.T) {
	_, err := NewVerifier(config.Config{})
	assert.Error(t, err)
}
