package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Codec signs and verifies HS256 session tokens with a shared secret.
type Codec struct {
	Secret []byte
	TTL    time.Duration
	Issuer string

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

var _ Verifier = (*Codec)(nil)

// NewCodec returns a Codec using the given secret and TTL. A zero TTL falls
// back to DefaultSessionTTL.
func NewCodec(secret string, ttl time.Duration, issuer string) *Codec {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Codec{Secret: []byte(secret), TTL: ttl, Issuer: issuer}
}

func (c *Codec) now() time.Time {
	if c.Now != nil {
		return c.Now().UTC()
	}
	return time.Now().UTC()
}

// Issue signs a session token for the user. The returned claims carry the
// computed expiry.
func (c *Codec) Issue(userID, role string) (string, Claims, error) {
	if len(c.Secret) == 0 {
		return "", Claims{}, errors.New("jwtx: empty signing secret")
	}

	claims := NewSessionClaims(userID, role, c.Issuer, c.TTL, c.now())
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.Secret)
	if err != nil {
		return "", Claims{}, fmt.Errorf("jwtx: sign: %w", err)
	}
	return token, claims, nil
}

// Verify checks the signature and expiry of a session token. Expired tokens
// yield ErrExpired; every other failure yields ErrMalformed.
func (c *Codec) Verify(tokenStr string) (Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	}
	if c.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(c.Issuer))
	}

	var claims Claims
	token, err := jwt.NewParser(opts...).ParseWithClaims(tokenStr, &claims, func(*jwt.Token) (any, error) {
		return c.Secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpired
		}
		return Claims{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if !token.Valid || claims.Subject == "" || claims.Role == "" {
		return Claims{}, ErrMalformed
	}

	return claims, nil
}
