package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims are the JWT claims carried by an access token. The subject
// is the user id that scopes every favorites and history operation; there
// is deliberately no process-wide "current user" anywhere else.
type SessionClaims struct {
	UserID uuid.UUID `json:"uid"`
	jwt.RegisteredClaims
}

// TokenService abstracts access-token generation and validation so the
// delivery layer does not depend on a concrete signing implementation.
type TokenService interface {
	// GenerateToken creates a signed access token for the given user.
	GenerateToken(userID uuid.UUID) (string, error)

	// ValidateToken checks a token string and returns its claims.
	ValidateToken(tokenString string) (*SessionClaims, error)
}
