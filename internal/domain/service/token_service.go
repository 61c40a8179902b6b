package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the identity claims carried by access tokens.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService validates access tokens issued for the identity provider's users.
type TokenService interface {
	// IssueAccessToken signs a token for subject; used by development tooling.
	IssueAccessToken(subject, email string, ttl time.Duration) (string, error)

	// ValidateToken parses and verifies an access token.
	ValidateToken(tokenString string) (*Claims, error)
}
