package commands

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"lendly/internal/domain/booking"
	"lendly/internal/infra"
	"lendly/internal/pkg/clock"
	"lendly/internal/pkg/errs"
	"lendly/internal/usecase/queries"
	"lendly/internal/usecase/shared"
)

var (
	ErrActorNotFound   = errs.New("acting user not found")
	ErrItemNotFound    = errs.New("item not found")
	ErrBookingNotFound = errs.New("booking not found")
	ErrInvalidPeriod   = errs.New("invalid booking period")
	ErrItemUnavailable = errs.New("item is not available for booking")
	ErrBookingConflict = errs.New("booking period conflicts with an existing booking")
	ErrNotItemOwner    = errs.New("actor is not the item owner")
	ErrDatabaseFailure = errs.New("database operation failed")
)

type CreateBookingRequest struct {
	ItemID    uuid.UUID
	StartTime time.Time
	EndTime   time.Time
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest, renterID uuid.UUID) (*queries.BookingView, error)
	DecideBooking(ctx context.Context, bookingID, actorID uuid.UUID, approved bool) (*queries.BookingView, error)
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	viewRepo queries.BookingViewRepo
	clock    clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, viewRepo queries.BookingViewRepo, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{
		uow:      uow,
		viewRepo: viewRepo,
		clock:    clk,
	}
}

func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, req CreateBookingRequest, renterID uuid.UUID) (*queries.BookingView, error) {
	period, err := booking.NewPeriod(req.StartTime, req.EndTime)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPeriod)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Conflict wins over every other failure, so the overlap count runs first.
		blocking, rerr := tx.Reads().BlockingBookingCount(ctx, req.ItemID, period.Start(), period.End())
		if rerr != nil {
			return rerr
		}
		if blocking > 0 {
			return ErrBookingConflict
		}

		if _, rerr := tx.Reads().UserByID(ctx, renterID); rerr != nil {
			if infra.IsKind(rerr, infra.KindNotFound) {
				return ErrActorNotFound
			}
			return rerr
		}

		itemSnap, rerr := tx.Reads().ItemByID(ctx, req.ItemID)
		if rerr != nil {
			if infra.IsKind(rerr, infra.KindNotFound) {
				return ErrItemNotFound
			}
			return rerr
		}

		if !itemSnap.Available {
			return ErrItemUnavailable
		}

		b := booking.NewBooking(req.ItemID, renterID, period)
		id, rerr := tx.Bookings().Create(ctx, tx.DB(), b)
		if rerr != nil {
			// Exclusion constraint backstop for writers racing past the count check
			if infra.IsKind(rerr, infra.KindConflict) {
				return ErrBookingConflict
			}
			return rerr
		}
		createdID = id

		return uc.enqueueNotification(ctx, tx, "booking_created", id, itemSnap.OwnerID)
	})
	if err != nil {
		return nil, err
	}

	return uc.readView(ctx, createdID)
}

func (uc *bookingUseCaseImpl) DecideBooking(ctx context.Context, bookingID, actorID uuid.UUID, approved bool) (*queries.BookingView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, rerr := tx.Reads().UserByID(ctx, actorID); rerr != nil {
			if infra.IsKind(rerr, infra.KindNotFound) {
				return ErrActorNotFound
			}
			return rerr
		}

		snap, rerr := tx.Reads().BookingByID(ctx, bookingID)
		if rerr != nil {
			if infra.IsKind(rerr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return rerr
		}

		if snap.ItemOwnerID != actorID {
			return ErrNotItemOwner
		}

		entity := booking.ReconstructBooking(
			snap.ID,
			snap.ItemID,
			snap.RenterID,
			booking.ReconstructPeriod(snap.StartTime, snap.EndTime),
			booking.Status(snap.Status),
			time.Time{}, time.Time{},
		)

		// Settled bookings stay as they are; deciding twice is a no-op.
		if !entity.Decide(approved) {
			return nil
		}

		if rerr := tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, entity.Status()); rerr != nil {
			return rerr
		}

		return uc.enqueueNotification(ctx, tx, "booking_decided", bookingID, snap.RenterID)
	})
	if err != nil {
		return nil, err
	}

	return uc.readView(ctx, bookingID)
}

// readView performs the read-after-write so callers get the joined view.
func (uc *bookingUseCaseImpl) readView(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	view, err := uc.viewRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseFailure)
	}
	return view, nil
}

func (uc *bookingUseCaseImpl) enqueueNotification(ctx context.Context, tx shared.Tx, topic string, bookingID, recipientID uuid.UUID) error {
	payload, err := json.Marshal(map[string]any{
		"booking_id":   bookingID,
		"recipient_id": recipientID,
		"occurred_at":  uc.clock.Now(),
	})
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), topic, payload)
}
