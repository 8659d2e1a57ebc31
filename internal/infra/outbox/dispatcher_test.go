//go:build unit

package outbox

import (
	"context"
	"io"
	"log/slog"
	"testing"

	sqlc "lendly/internal/infra/sqlc/generated"
	"lendly/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockJobQueries struct {
	mock.Mock
}

func (m *MockJobQueries) ListPendingNotificationJobs(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.NotificationJob, error) {
	args := m.Called(ctx, db, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]sqlc.NotificationJob), args.Error(1)
}

func (m *MockJobQueries) MarkNotificationJobProcessed(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func newDispatcher(queries JobQueries) *Dispatcher {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewDispatcher(nil, queries, logger, config.OutboxConfig{})
}

func TestDispatcher_DrainOnce(t *testing.T) {
	t.Run("pending jobs are marked processed in order", func(t *testing.T) {
		first := sqlc.NotificationJob{ID: uuid.New(), Topic: "booking_created", Payload: []byte(`{}`)}
		second := sqlc.NotificationJob{ID: uuid.New(), Topic: "booking_decided", Payload: []byte(`{}`)}

		queries := new(MockJobQueries)
		queries.On("ListPendingNotificationJobs", mock.Anything, nil, int32(50)).
			Return([]sqlc.NotificationJob{first, second}, nil)
		queries.On("MarkNotificationJobProcessed", mock.Anything, nil, first.ID).Return(int64(1), nil)
		queries.On("MarkNotificationJobProcessed", mock.Anything, nil, second.ID).Return(int64(1), nil)

		err := newDispatcher(queries).DrainOnce(context.Background())

		assert.NoError(t, err)
		queries.AssertExpectations(t)
	})

	t.Run("a contested job is skipped without failing the batch", func(t *testing.T) {
		contested := sqlc.NotificationJob{ID: uuid.New(), Topic: "booking_created"}
		mine := sqlc.NotificationJob{ID: uuid.New(), Topic: "booking_decided"}

		queries := new(MockJobQueries)
		queries.On("ListPendingNotificationJobs", mock.Anything, nil, int32(50)).
			Return([]sqlc.NotificationJob{contested, mine}, nil)
		queries.On("MarkNotificationJobProcessed", mock.Anything, nil, contested.ID).Return(int64(0), nil)
		queries.On("MarkNotificationJobProcessed", mock.Anything, nil, mine.ID).Return(int64(1), nil)

		err := newDispatcher(queries).DrainOnce(context.Background())

		assert.NoError(t, err)
		queries.AssertExpectations(t)
	})

	t.Run("list failure surfaces", func(t *testing.T) {
		queries := new(MockJobQueries)
		queries.On("ListPendingNotificationJobs", mock.Anything, nil, int32(50)).
			Return(nil, assert.AnError)

		err := newDispatcher(queries).DrainOnce(context.Background())

		assert.Error(t, err)
	})

	t.Run("mark failure surfaces", func(t *testing.T) {
		job := sqlc.NotificationJob{ID: uuid.New(), Topic: "booking_created"}

		queries := new(MockJobQueries)
		queries.On("ListPendingNotificationJobs", mock.Anything, nil, int32(50)).
			Return([]sqlc.NotificationJob{job}, nil)
		queries.On("MarkNotificationJobProcessed", mock.Anything, nil, job.ID).Return(int64(0), assert.AnError)

		err := newDispatcher(queries).DrainOnce(context.Background())

		assert.Error(t, err)
	})
}
