package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessClaims are the claims carried by an access token.
type AccessClaims struct {
	UserID uuid.UUID
	Roles  []string
	jwt.RegisteredClaims
}

// TokenVerifier validates access tokens issued by the identity service.
type TokenVerifier interface {
	// ValidateAccessToken parses and verifies the token, returning its claims.
	ValidateAccessToken(tokenString string) (*AccessClaims, error)
}
