package components

import (
	"lendly/internal/handler"
	"lendly/internal/handler/api"
	"lendly/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewBookingHandler,
		api.NewItemHandler,
		api.NewRequestHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
