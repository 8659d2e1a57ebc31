package bootstrap

import (
	"lendly/internal/pkg/config"
	"lendly/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTManager,
	),
)

func NewJWTManager(cfg config.Config) (*jwt.Manager, error) {
	return jwt.NewManager(cfg.JWT)
}
