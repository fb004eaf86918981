package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is the default lifetime for session tokens.
const DefaultSessionTTL = 7 * 24 * time.Hour

// Claims are the session-token claims. The subject carries the user ID.
type Claims struct {
	jwt.RegisteredClaims

	// Role of the user at the time the token was issued.
	Role string `json:"role"`
}

// UserID returns the subject claim.
func (c Claims) UserID() string {
	return c.Subject
}

// NewSessionClaims builds minimally-correct claims.
func NewSessionClaims(userID, role, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role: role,
	}
}
