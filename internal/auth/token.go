// internal/auth/token.go
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Manager issues and validates HS256 bearer tokens. The secret and TTL come
// from configuration; tokens stay valid until natural expiry (no revocation).
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, expireMinutes int) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    time.Duration(expireMinutes) * time.Minute,
	}
}

// Issue signs a token whose subject is the username.
func (m *Manager) Issue(username string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Validate returns the subject username. It does not check that the user
// still exists; callers look the user up themselves.
func (m *Manager) Validate(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
