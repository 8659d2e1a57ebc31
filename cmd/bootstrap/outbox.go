package bootstrap

import (
	"context"
	"log/slog"

	"lendly/internal/infra/outbox"
	sqlc "lendly/internal/infra/sqlc/generated"
	"lendly/internal/pkg/config"

	"go.uber.org/fx"
)

var OutboxModule = fx.Module("outbox",
	fx.Invoke(StartOutboxDispatcher),
)

func StartOutboxDispatcher(lc fx.Lifecycle, db sqlc.DBTX, q *sqlc.Queries, logger *slog.Logger, cfg config.Config) {
	dispatcher := outbox.NewDispatcher(db, q, logger, cfg.Outbox)

	runCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go dispatcher.Run(runCtx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
