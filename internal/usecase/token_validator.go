package usecase

import (
	"github.com/google/uuid"

	"lendly/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, error)
}

type tokenValidatorImpl struct {
	jwtManager *jwt.Manager
}

func NewTokenValidator(jwtManager *jwt.Manager) TokenValidator {
	return &tokenValidatorImpl{
		jwtManager: jwtManager,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, error) {
	claims, err := t.jwtManager.ValidateAccessToken(tokenString)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.UserID, nil
}
