package response

import (
	"lendly/internal/pkg/jwt"

	"github.com/google/uuid"
)

type LoginResponse struct {
	UserID       uuid.UUID `json:"userId"`
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresIn    int64     `json:"expiresIn"`
}

func FromTokenPair(userID uuid.UUID, pair *jwt.TokenPair) *LoginResponse {
	return &LoginResponse{
		UserID:       userID,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}
}
