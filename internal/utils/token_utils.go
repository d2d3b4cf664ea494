package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IssueActorToken signs an HS256 bearer token whose subject is the actor ID
// the ledger records on everything the holder posts.
func IssueActorToken(actorID string, secret string, issuer string, ttl time.Duration) (string, error) {
	if actorID == "" {
		return "", errors.New("actor ID is required")
	}
	if ttl <= 0 {
		return "", errors.New("token lifetime must be positive")
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   actorID,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
