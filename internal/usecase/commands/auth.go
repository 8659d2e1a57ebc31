package commands

import (
	"context"

	"github.com/google/uuid"

	"lendly/internal/pkg/errs"
	"lendly/internal/pkg/jwt"
	"lendly/internal/pkg/password"
	"lendly/internal/usecase/queries"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrTokenValidation    = errs.New("token validation failed")
)

type LoginRequest struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID    uuid.UUID
	TokenPair *jwt.TokenPair
}

type AuthCommands interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*LoginResult, error)
}

type authCommandsImpl struct {
	readStore  queries.UserReadStore
	jwtManager *jwt.Manager
}

func NewAuthCommands(readStore queries.UserReadStore, jwtManager *jwt.Manager) AuthCommands {
	return &authCommandsImpl{
		readStore:  readStore,
		jwtManager: jwtManager,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	view, hash, err := a.readStore.FindByEmail(ctx, req.Email)
	if err != nil {
		// Same error as password mismatch to prevent user enumeration
		return nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(hash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	pair, err := a.jwtManager.GenerateTokenPair(view.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		UserID:    view.ID,
		TokenPair: pair,
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*LoginResult, error) {
	claims, err := a.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	// Validate the user still exists before reissuing tokens
	if _, err := a.readStore.FindByID(ctx, claims.UserID); err != nil {
		return nil, ErrUserNotFound
	}

	pair, err := a.jwtManager.GenerateTokenPair(claims.UserID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &LoginResult{
		UserID:    claims.UserID,
		TokenPair: pair,
	}, nil
}
