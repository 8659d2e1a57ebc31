package outbox

import (
	"context"
	"log/slog"
	"time"

	sqlc "lendly/internal/infra/sqlc/generated"
	"lendly/internal/pkg/config"
	"lendly/internal/pkg/errs"

	"github.com/google/uuid"
)

type JobQueries interface {
	ListPendingNotificationJobs(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.NotificationJob, error)
	MarkNotificationJobProcessed(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

// Dispatcher drains notification_jobs rows written by the command side.
// Delivery stays behind this boundary: a drained job is logged and marked
// processed, and a real channel (mail, push) would hook in at dispatch.
type Dispatcher struct {
	db       sqlc.DBTX
	queries  JobQueries
	logger   *slog.Logger
	interval time.Duration
	batch    int32
}

func NewDispatcher(db sqlc.DBTX, queries JobQueries, logger *slog.Logger, cfg config.OutboxConfig) *Dispatcher {
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = 10 * time.Second
	}
	batch := int32(cfg.BatchSize)
	if batch <= 0 {
		batch = 50
	}
	return &Dispatcher{
		db:       db,
		queries:  queries,
		logger:   logger,
		interval: interval,
		batch:    batch,
	}
}

// Run polls for pending jobs until ctx is cancelled.
func (d *Dispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := d.DrainOnce(ctx); err != nil {
				d.logger.Error("outbox drain failed", "error", err)
			}
		}
	}
}

// DrainOnce dispatches at most one batch of pending jobs in creation order.
func (d *Dispatcher) DrainOnce(ctx context.Context) error {
	jobs, err := d.queries.ListPendingNotificationJobs(ctx, d.db, d.batch)
	if err != nil {
		return errs.Wrap(err, "failed to list pending notification jobs")
	}

	for _, job := range jobs {
		rows, err := d.queries.MarkNotificationJobProcessed(ctx, d.db, job.ID)
		if err != nil {
			return errs.Wrap(err, "failed to mark notification job processed")
		}
		if rows == 0 {
			// Another dispatcher claimed it between the list and the update
			continue
		}
		d.logger.Info("notification job dispatched",
			"job_id", job.ID,
			"topic", job.Topic,
			"payload", string(job.Payload),
		)
	}
	return nil
}
