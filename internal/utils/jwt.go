package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiryClaim is returned by TokenExpiry when the token has no exp claim.
var ErrNoExpiryClaim = errors.New("token has no exp claim")

// TokenExpiry returns the expiry time encoded in the "exp" claim of a JWT.
//
// The signature is NOT verified: the client cannot verify tokens issued by
// the backend and only needs the expiry to decide whether to refresh ahead of
// time. Opaque (non-JWT) tokens yield an error.
func TokenExpiry(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("parse token: %w", err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("read exp claim: %w", err)
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiryClaim
	}

	return exp.Time, nil
}

// IsTokenLikelyExpired reports whether the JWT expires within leeway of now.
// Tokens whose expiry cannot be read are treated as expired.
func IsTokenLikelyExpired(tokenString string, now time.Time, leeway time.Duration) bool {
	exp, err := TokenExpiry(tokenString)
	if err != nil {
		return true
	}
	return !exp.After(now.Add(leeway))
}
