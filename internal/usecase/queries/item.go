package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"lendly/internal/infra"
	"lendly/internal/pkg/clock"
	"lendly/internal/pkg/errs"
)

var ErrItemNotFound = errs.New("item not found")

type ItemQueries interface {
	GetByID(ctx context.Context, viewerID, id uuid.UUID) (*ItemView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ItemView, error)
	Search(ctx context.Context, text string) ([]*ItemSummary, error)
}

type ItemViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemSummary, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ItemSummary, error)
	Search(ctx context.Context, text string) ([]*ItemSummary, error)
	LastBookingsByItemIDs(ctx context.Context, itemIDs []uuid.UUID, onTime time.Time) (map[uuid.UUID]*BookingBrief, error)
	NextBookingsByItemIDs(ctx context.Context, itemIDs []uuid.UUID, onTime time.Time) (map[uuid.UUID]*BookingBrief, error)
	CommentsByItemIDs(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID][]CommentView, error)
}

type itemQueriesImpl struct {
	repo  ItemViewRepo
	clock clock.Clock
}

func NewItemQueries(repo ItemViewRepo, clk clock.Clock) ItemQueries {
	return &itemQueriesImpl{
		repo:  repo,
		clock: clk,
	}
}

// GetByID returns the item with its comments. The nearest bookings are
// attached only when the viewer owns the item.
func (q *itemQueriesImpl) GetByID(ctx context.Context, viewerID, id uuid.UUID) (*ItemView, error) {
	summary, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	views, err := q.assembleViews(ctx, []*ItemSummary{summary}, viewerID == summary.OwnerID)
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

func (q *itemQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ItemView, error) {
	summaries, err := q.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return q.assembleViews(ctx, summaries, true)
}

// Search returns available items matching the text. A blank query yields an
// empty result instead of the whole catalog.
func (q *itemQueriesImpl) Search(ctx context.Context, text string) ([]*ItemSummary, error) {
	if text == "" {
		return []*ItemSummary{}, nil
	}
	return q.repo.Search(ctx, text)
}

// assembleViews joins summaries with their comments and, for owners, the
// nearest past and upcoming approved bookings in two batched lookups.
func (q *itemQueriesImpl) assembleViews(ctx context.Context, summaries []*ItemSummary, withBookings bool) ([]*ItemView, error) {
	itemIDs := make([]uuid.UUID, len(summaries))
	for i, s := range summaries {
		itemIDs[i] = s.ID
	}

	comments := map[uuid.UUID][]CommentView{}
	var lastBookings, nextBookings map[uuid.UUID]*BookingBrief

	if len(itemIDs) > 0 {
		var err error
		comments, err = q.repo.CommentsByItemIDs(ctx, itemIDs)
		if err != nil {
			return nil, err
		}

		if withBookings {
			now := q.clock.Now()
			lastBookings, err = q.repo.LastBookingsByItemIDs(ctx, itemIDs, now)
			if err != nil {
				return nil, err
			}
			nextBookings, err = q.repo.NextBookingsByItemIDs(ctx, itemIDs, now)
			if err != nil {
				return nil, err
			}
		}
	}

	views := make([]*ItemView, len(summaries))
	for i, s := range summaries {
		view := &ItemView{
			ID:          s.ID,
			OwnerID:     s.OwnerID,
			Name:        s.Name,
			Description: s.Description,
			Available:   s.Available,
			RequestID:   s.RequestID,
			Comments:    comments[s.ID],
		}
		if view.Comments == nil {
			view.Comments = []CommentView{}
		}
		if withBookings {
			view.LastBooking = lastBookings[s.ID]
			view.NextBooking = nextBookings[s.ID]
		}
		views[i] = view
	}

	return views, nil
}
