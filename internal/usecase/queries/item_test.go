//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"lendly/internal/infra"
	"lendly/internal/pkg/clock"
	"lendly/internal/usecase/queries"
	"lendly/tests/common/builder"
	queriesmock "lendly/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newItemQueries(t *testing.T, now time.Time) (queries.ItemQueries, *queriesmock.MockItemViewRepo) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := queriesmock.NewMockItemViewRepo(ctrl)
	return queries.NewItemQueries(repo, clock.NewMockClock(now)), repo
}

func TestItemQueries_GetByID(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	summary := builder.NewItemBuilder().BuildSummary()
	itemIDs := []uuid.UUID{summary.ID}

	comment := queries.CommentView{
		ID:         uuid.New(),
		AuthorID:   uuid.New(),
		AuthorName: "Hanako Suzuki",
		Text:       "Great tent",
		CreatedAt:  now.Add(-24 * time.Hour),
	}
	last := &queries.BookingBrief{
		ID:        uuid.New(),
		RenterID:  comment.AuthorID,
		StartTime: now.Add(-72 * time.Hour),
		EndTime:   now.Add(-48 * time.Hour),
	}
	next := &queries.BookingBrief{
		ID:        uuid.New(),
		RenterID:  uuid.New(),
		StartTime: now.Add(24 * time.Hour),
		EndTime:   now.Add(48 * time.Hour),
	}

	t.Run("owner sees comments and nearest bookings", func(t *testing.T) {
		q, repo := newItemQueries(t, now)
		repo.EXPECT().FindByID(gomock.Any(), summary.ID).Return(summary, nil)
		repo.EXPECT().CommentsByItemIDs(gomock.Any(), itemIDs).
			Return(map[uuid.UUID][]queries.CommentView{summary.ID: {comment}}, nil)
		repo.EXPECT().LastBookingsByItemIDs(gomock.Any(), itemIDs, now).
			Return(map[uuid.UUID]*queries.BookingBrief{summary.ID: last}, nil)
		repo.EXPECT().NextBookingsByItemIDs(gomock.Any(), itemIDs, now).
			Return(map[uuid.UUID]*queries.BookingBrief{summary.ID: next}, nil)

		got, err := q.GetByID(context.Background(), summary.OwnerID, summary.ID)
		require.NoError(t, err)

		want := &queries.ItemView{
			ID:          summary.ID,
			OwnerID:     summary.OwnerID,
			Name:        summary.Name,
			Description: summary.Description,
			Available:   summary.Available,
			RequestID:   summary.RequestID,
			LastBooking: last,
			NextBooking: next,
			Comments:    []queries.CommentView{comment},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("item view mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("non-owner sees comments but no bookings", func(t *testing.T) {
		q, repo := newItemQueries(t, now)
		repo.EXPECT().FindByID(gomock.Any(), summary.ID).Return(summary, nil)
		repo.EXPECT().CommentsByItemIDs(gomock.Any(), itemIDs).
			Return(map[uuid.UUID][]queries.CommentView{summary.ID: {comment}}, nil)

		got, err := q.GetByID(context.Background(), uuid.New(), summary.ID)
		require.NoError(t, err)
		assert.Nil(t, got.LastBooking)
		assert.Nil(t, got.NextBooking)
		assert.Equal(t, []queries.CommentView{comment}, got.Comments)
	})

	t.Run("no comments yields empty slice not nil", func(t *testing.T) {
		q, repo := newItemQueries(t, now)
		repo.EXPECT().FindByID(gomock.Any(), summary.ID).Return(summary, nil)
		repo.EXPECT().CommentsByItemIDs(gomock.Any(), itemIDs).
			Return(map[uuid.UUID][]queries.CommentView{}, nil)

		got, err := q.GetByID(context.Background(), uuid.New(), summary.ID)
		require.NoError(t, err)
		assert.NotNil(t, got.Comments)
		assert.Empty(t, got.Comments)
	})

	t.Run("item not found", func(t *testing.T) {
		q, repo := newItemQueries(t, now)
		repo.EXPECT().FindByID(gomock.Any(), summary.ID).
			Return(nil, infra.WrapRepoErr("item", errors.New("no rows"), infra.KindNotFound))

		_, err := q.GetByID(context.Background(), summary.OwnerID, summary.ID)
		require.ErrorIs(t, err, queries.ErrItemNotFound)
	})
}

func TestItemQueries_ListByOwner(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ownerID := uuid.New()

	first := builder.NewItemBuilder().WithOwnerID(ownerID).BuildSummary()
	second := builder.NewItemBuilder().WithOwnerID(ownerID).WithName("Ladder").BuildSummary()
	summaries := []*queries.ItemSummary{first, second}
	itemIDs := []uuid.UUID{first.ID, second.ID}

	next := &queries.BookingBrief{
		ID:        uuid.New(),
		RenterID:  uuid.New(),
		StartTime: now.Add(24 * time.Hour),
		EndTime:   now.Add(48 * time.Hour),
	}

	t.Run("bookings are batched across items", func(t *testing.T) {
		q, repo := newItemQueries(t, now)
		repo.EXPECT().ListByOwner(gomock.Any(), ownerID).Return(summaries, nil)
		repo.EXPECT().CommentsByItemIDs(gomock.Any(), itemIDs).
			Return(map[uuid.UUID][]queries.CommentView{}, nil)
		repo.EXPECT().LastBookingsByItemIDs(gomock.Any(), itemIDs, now).
			Return(map[uuid.UUID]*queries.BookingBrief{}, nil)
		repo.EXPECT().NextBookingsByItemIDs(gomock.Any(), itemIDs, now).
			Return(map[uuid.UUID]*queries.BookingBrief{second.ID: next}, nil)

		got, err := q.ListByOwner(context.Background(), ownerID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Nil(t, got[0].NextBooking)
		assert.Equal(t, next, got[1].NextBooking)
	})

	t.Run("no items means no batch lookups", func(t *testing.T) {
		q, repo := newItemQueries(t, now)
		repo.EXPECT().ListByOwner(gomock.Any(), ownerID).Return([]*queries.ItemSummary{}, nil)

		got, err := q.ListByOwner(context.Background(), ownerID)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestItemQueries_Search(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("blank query short-circuits", func(t *testing.T) {
		q, _ := newItemQueries(t, now)
		got, err := q.Search(context.Background(), "")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("matching items are returned", func(t *testing.T) {
		summaries := []*queries.ItemSummary{builder.NewItemBuilder().BuildSummary()}
		q, repo := newItemQueries(t, now)
		repo.EXPECT().Search(gomock.Any(), "tent").Return(summaries, nil)

		got, err := q.Search(context.Background(), "tent")
		require.NoError(t, err)
		assert.Equal(t, summaries, got)
	})
}
