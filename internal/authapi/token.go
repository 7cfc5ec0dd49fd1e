package authapi

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the subset of token claims shown to the signed in user.
type TokenClaims struct {
	Subject   string
	Username  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// ParseTokenClaims reads the claims of a JWT issued by the auth API. The
// signature is not verified, the claims are only used for display.
func ParseTokenClaims(token string) (*TokenClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpaqueToken, err)
	}

	var tc TokenClaims
	tc.Subject, _ = claims.GetSubject()
	if username, ok := claims["username"].(string); ok {
		tc.Username = username
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		tc.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		tc.ExpiresAt = exp.Time
	}
	return &tc, nil
}

// Expired reports whether the token carries an expiry that has passed.
func (tc *TokenClaims) Expired(now time.Time) bool {
	return !tc.ExpiresAt.IsZero() && now.After(tc.ExpiresAt)
}
