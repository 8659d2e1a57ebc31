package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"lendly/internal/domain/booking"
	"lendly/internal/infra"
	"lendly/internal/pkg/clock"
	"lendly/internal/pkg/errs"
)

var (
	ErrBookingNotFound  = errs.New("booking not found")
	ErrViewerNotAllowed = errs.New("viewer is neither renter nor item owner")
	ErrActorNotFound    = errs.New("acting user not found")
	ErrUnknownBucket    = errs.New("unknown booking bucket")
)

type BookingQueries interface {
	GetByID(ctx context.Context, viewerID, id uuid.UUID) (*BookingView, error)
	ListForRenter(ctx context.Context, renterID uuid.UUID, state string) ([]*BookingListItem, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID, state string) ([]*BookingListItem, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListForRenter(ctx context.Context, renterID uuid.UUID, bucket booking.Bucket, onTime time.Time) ([]*BookingListItem, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID, bucket booking.Bucket, onTime time.Time) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	repo      BookingViewRepo
	userStore UserReadStore
	clock     clock.Clock
}

func NewBookingQueries(repo BookingViewRepo, userStore UserReadStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{
		repo:      repo,
		userStore: userStore,
		clock:     clk,
	}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, viewerID, id uuid.UUID) (*BookingView, error) {
	if err := q.ensureUserExists(ctx, viewerID); err != nil {
		return nil, err
	}

	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if view.Renter.ID != viewerID && view.Item.OwnerID != viewerID {
		return nil, ErrViewerNotAllowed
	}

	return view, nil
}

func (q *bookingQueriesImpl) ListForRenter(ctx context.Context, renterID uuid.UUID, state string) ([]*BookingListItem, error) {
	bucket, err := booking.NewBucket(state)
	if err != nil {
		return nil, errs.Mark(err, ErrUnknownBucket)
	}

	if err := q.ensureUserExists(ctx, renterID); err != nil {
		return nil, err
	}

	return q.repo.ListForRenter(ctx, renterID, bucket, q.clock.Now())
}

func (q *bookingQueriesImpl) ListForOwner(ctx context.Context, ownerID uuid.UUID, state string) ([]*BookingListItem, error) {
	bucket, err := booking.NewBucket(state)
	if err != nil {
		return nil, errs.Mark(err, ErrUnknownBucket)
	}

	if err := q.ensureUserExists(ctx, ownerID); err != nil {
		return nil, err
	}

	return q.repo.ListForOwner(ctx, ownerID, bucket, q.clock.Now())
}

func (q *bookingQueriesImpl) ensureUserExists(ctx context.Context, userID uuid.UUID) error {
	_, err := q.userStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrActorNotFound
		}
		return err
	}
	return nil
}
