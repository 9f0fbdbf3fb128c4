// Package auth implements the token and credential primitives of the
// messaging service: HS256 token signing/verification, bcrypt password
// hashing, and the request guards built on top of token verification.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/messagely/messagely/internal/common"
)

// Claims carries the authenticated identity inside a signed token.
// The token is stateless: validity is a function of the signature alone.
type Claims struct {
	jwt.RegisteredClaims
	Username string
}

// GenerateToken signs a token carrying username under secretKey.
// A zero validityDuration issues a token without an expiry claim; rotating
// the secret is then the only way to invalidate issued tokens.
func GenerateToken(username string, secretKey []byte, validityDuration time.Duration) (string, error) {
	claims := Claims{Username: username}
	if validityDuration > 0 {
		claims.RegisteredClaims = jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUsernameFromToken verifies tokenString against secretKey and returns the
// embedded username. Any failure (malformed token, bad signature, missing
// username) yields common.ErrInvalidToken; the payload is never partially
// trusted.
func GetUsernameFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.Username == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Username, nil
}
