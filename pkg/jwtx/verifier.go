package jwtx

import (
	"errors"
)

// Verifier validates a JWT and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	// ErrMalformed covers every rejection other than expiry: bad structure,
	// bad signature, wrong algorithm, wrong issuer or missing claims.
	ErrMalformed = errors.New("jwtx: malformed token")
	ErrExpired   = errors.New("jwtx: token expired")
)
