package identity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/smallbiznis/partnerportal/internal/config"
)

var (
	ErrInvalidToken  = errors.New("invalid_token")
	ErrMissingClaims = errors.New("missing_claims")
)

// Identity is the verified caller extracted from a bearer token.
type Identity struct {
	Subject string
	Email   string
	Role    string
}

// Verifier validates bearer tokens issued by the portal's identity provider.
// Only HMAC-signed tokens are accepted; the portal never issues tokens itself.
type Verifier struct {
	secret []byte
}

func NewVerifier(cfg config.Config) (*Verifier, error) {
	secret := strings.TrimSpace(cfg.AuthJWTSecret)
	if secret == "" {
		return nil, errors.New("AUTH_JWT_SECRET is required")
	}
	return &Verifier{secret: []byte(secret)}, nil
}

func (v *Verifier) VerifyToken(tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrMissingClaims
	}

	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return nil, fmt.Errorf("%w: missing sub claim", ErrMissingClaims)
	}

	identity := &Identity{Subject: subject}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if role, ok := claims["role"].(string); ok {
		identity.Role = role
	}

	return identity, nil
}
