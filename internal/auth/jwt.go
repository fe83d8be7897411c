// Package auth issues and verifies the signed session tokens used by the API.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionValidity is how long an issued session token stays valid.
const SessionValidity = 7 * 24 * time.Hour

// SessionCookieName is the cookie carrying the session token
const SessionCookieName = "session"

// ErrInvalidToken is returned when a token fails signature, structure or
// expiry checks. Callers treat it identically to "no session".
var ErrInvalidToken = errors.New("invalid session token")

// Claims binds a user identity to the token expiry
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// IssueToken produces a signed HS256 token for the given user, valid for
// SessionValidity from now.
func IssueToken(userID, username string, secret []byte) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionValidity)),
		},
		UserID:   userID,
		Username: username,
	})

	return token.SignedString(secret)
}

// VerifyToken checks signature and expiry and returns the embedded identity.
// Any cryptographic or structural failure yields ErrInvalidToken.
func VerifyToken(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
