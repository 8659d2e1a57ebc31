package repository

import (
	"context"

	"github.com/google/uuid"

	"lendly/internal/infra"
	sqlc "lendly/internal/infra/sqlc/generated"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) (uuid.UUID, error)
}

// NotificationRepository writes outbox jobs in the same transaction as the
// state change they announce.
type NotificationRepository struct {
	queries NotificationWriteQueries
}

func NewNotificationRepository(queries NotificationWriteQueries) *NotificationRepository {
	return &NotificationRepository{queries: queries}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx sqlc.DBTX, topic string, payload []byte) error {
	_, err := r.queries.CreateNotificationJob(ctx, tx, sqlc.CreateNotificationJobParams{
		ID:      uuid.New(),
		Topic:   topic,
		Payload: payload,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}
