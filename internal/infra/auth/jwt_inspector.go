// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"adminpanel/internal/domain/service"
)

// jwtInspector reads claims of the API's bearer credential without checking
// the signature; the console never holds the signing secret.
type jwtInspector struct {
	parser *jwt.Parser
}

// NewJWTInspector is the constructor for jwtInspector.
func NewJWTInspector() service.TokenInspector {
	return &jwtInspector{parser: jwt.NewParser()}
}

// ExpiresAt returns the exp claim of token. Opaque (non-JWT) credentials and
// tokens without exp yield ok=false.
func (i *jwtInspector) ExpiresAt(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := i.parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}
