// Package session carries the resolved identity of the current user.
// Core operations receive a Session explicitly; they never reach into
// ambient state themselves.
package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/snapfest/snapfest/internal/errs"
)

// Session is the request-scoped identity resolved by the identity
// provider. Identifier is the user's email; Name and Mobile are cached
// profile fields and may be empty.
type Session struct {
	Identifier string
	Name       string
	Mobile     string
}

// Authenticated reports whether a user identifier was resolved.
func (s Session) Authenticated() bool { return s.Identifier != "" }

type tokenClaims struct {
	Name   string `json:"name,omitempty"`
	Mobile string `json:"mobile,omitempty"`
	jwt.RegisteredClaims
}

// IssueToken creates a signed HS256 token for the session, with the
// identifier as subject and profile fields as custom claims.
func IssueToken(key []byte, s Session, ttl time.Duration) (string, error) {
	if !s.Authenticated() {
		return "", errs.ErrNotAuthenticated
	}
	now := time.Now()
	claims := tokenClaims{
		Name:   s.Name,
		Mobile: s.Mobile,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.Identifier,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

// FromToken verifies a signed token and resolves the session from its
// claims. Invalid, expired or unsigned tokens yield ErrNotAuthenticated.
func FromToken(key []byte, token string) (Session, error) {
	var claims tokenClaims
	tok, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return key, nil
	})
	if err != nil || !tok.Valid || claims.Subject == "" {
		return Session{}, errs.ErrNotAuthenticated
	}
	return Session{
		Identifier: claims.Subject,
		Name:       claims.Name,
		Mobile:     claims.Mobile,
	}, nil
}
