// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"patrol/config"
	"patrol/internal/domain/entity"
	"patrol/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const accessTokenType = "access"

// ErrInvalidToken is returned for any token that fails verification.
var ErrInvalidToken = errors.New("invalid token")

// jwtVerifier validates HS256 access tokens signed with the shared access secret.
type jwtVerifier struct {
	accessSecret []byte
}

// NewJWTVerifier is the constructor for jwtVerifier.
func NewJWTVerifier(cfg *config.Config) (service.TokenVerifier, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtVerifier{accessSecret: []byte(cfg.SecretKey.Access)}, nil
}

// ValidateAccessToken parses the token, checks signature, expiry and type, and extracts claims.
// Roles this service does not know are dropped.
func (v *jwtVerifier) ValidateAccessToken(tokenString string) (*service.AccessClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return v.accessSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if tokenType, ok := claims["type"].(string); ok && tokenType != accessTokenType {
		return nil, errors.Wrapf(ErrInvalidToken, "unexpected token type %q", tokenType)
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, "missing subject")
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, "subject is not a user id")
	}

	accessClaims := &service.AccessClaims{
		UserID: userID,
		Roles:  entity.RolesFromStrings(rolesFromClaims(claims)).ToStrings(),
	}
	accessClaims.Subject = sub
	if exp, err := claims.GetExpirationTime(); err == nil {
		accessClaims.ExpiresAt = exp
	}
	if iat, err := claims.GetIssuedAt(); err == nil {
		accessClaims.IssuedAt = iat
	}

	return accessClaims, nil
}

func rolesFromClaims(claims jwt.MapClaims) []string {
	raw, ok := claims["roles"].([]any)
	if !ok {
		return nil
	}

	roles := make([]string, 0, len(raw))
	for _, r := range raw {
		if role, ok := r.(string); ok {
			roles = append(roles, role)
		}
	}

	return roles
}
