//go:build unit || e2e

package builder

import (
	"time"

	domuser "lendly/internal/domain/user"
	reqdto "lendly/internal/handler/dto/request"
	sqlc "lendly/internal/infra/sqlc/generated"
	"lendly/internal/pkg/password"
	"lendly/internal/usecase/queries"
	"lendly/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewUserBuilder() *UserBuilder {
	now := time.Now()
	return &UserBuilder{
		ID:        uuid.New(),
		Name:      "Taro Yamada",
		Email:     "taro@example.com",
		Password:  "password123",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithPassword(pw string) *UserBuilder {
	u.Password = pw
	return u
}

func (u *UserBuilder) BuildDomain() (*domuser.User, error) {
	email, err := domuser.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	hash, err := password.HashPassword(u.Password)
	if err != nil {
		return nil, err
	}
	return domuser.NewUser(u.Name, email, hash)
}

func (u *UserBuilder) BuildInfra() sqlc.User {
	hash, _ := password.HashPassword(u.Password)
	return sqlc.User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: hash,
		CreatedAt:    pgtype.Timestamptz{Time: u.CreatedAt, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: u.UpdatedAt, Valid: true},
	}
}

func (u *UserBuilder) BuildViewQuery() *queries.UserView {
	return &queries.UserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (u *UserBuilder) BuildSnapshot() *shared.UserSnapshot {
	return &shared.UserSnapshot{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

func (u *UserBuilder) BuildRegisterRequestDTO() reqdto.RegisterUserRequest {
	return reqdto.RegisterUserRequest{
		Name:     u.Name,
		Email:    u.Email,
		Password: u.Password,
	}
}
