package commands

import (
	"context"

	"github.com/google/uuid"

	"lendly/internal/domain/user"
	"lendly/internal/infra"
	"lendly/internal/pkg/errs"
	"lendly/internal/pkg/password"
	"lendly/internal/usecase/queries"
	"lendly/internal/usecase/shared"
)

var (
	ErrUserNotFound   = errs.New("user not found")
	ErrEmailTaken     = errs.New("email is already registered")
	ErrWeakPassword   = errs.New("password too weak")
	ErrHashingFailure = errs.New("password hashing failed")
)

type RegisterUserRequest struct {
	Name     string
	Email    string
	Password string
}

type UpdateUserRequest struct {
	Name  *string
	Email *string
}

type UserCommands interface {
	Register(ctx context.Context, req RegisterUserRequest) (*queries.UserView, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, req UpdateUserRequest) (*queries.UserView, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

type userUseCaseImpl struct {
	uow       shared.UnitOfWork
	readStore queries.UserReadStore
}

func NewUserUseCase(uow shared.UnitOfWork, readStore queries.UserReadStore) UserCommands {
	return &userUseCaseImpl{
		uow:       uow,
		readStore: readStore,
	}
}

func (uc *userUseCaseImpl) Register(ctx context.Context, req RegisterUserRequest) (*queries.UserView, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	pw, err := user.NewPassword(req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrWeakPassword)
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, errs.Mark(err, ErrHashingFailure)
	}

	entity, err := user.NewUser(req.Name, email, hash)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, rerr := tx.Users().Create(ctx, tx.DB(), entity)
		if rerr != nil {
			if infra.IsKind(rerr, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return rerr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := uc.readStore.FindByID(ctx, createdID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseFailure)
	}
	return view, nil
}

func (uc *userUseCaseImpl) UpdateUser(ctx context.Context, userID uuid.UUID, req UpdateUserRequest) (*queries.UserView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, rerr := tx.Reads().UserByID(ctx, userID)
		if rerr != nil {
			if infra.IsKind(rerr, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return rerr
		}

		name := snap.Name
		if req.Name != nil {
			if *req.Name == "" {
				return errs.Mark(user.ErrEmptyName, ErrDomainValidation)
			}
			name = *req.Name
		}

		email := snap.Email
		if req.Email != nil {
			parsed, derr := user.NewEmail(*req.Email)
			if derr != nil {
				return errs.Mark(derr, ErrDomainValidation)
			}
			email = parsed.Value()
		}

		if rerr := tx.Users().Update(ctx, tx.DB(), userID, name, email); rerr != nil {
			if infra.IsKind(rerr, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return rerr
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := uc.readStore.FindByID(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseFailure)
	}
	return view, nil
}

func (uc *userUseCaseImpl) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if rerr := tx.Users().Delete(ctx, tx.DB(), userID); rerr != nil {
			if infra.IsKind(rerr, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return rerr
		}
		return nil
	})
}
