package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"lendly/internal/domain/booking"
	"lendly/internal/infra"
	sqlc "lendly/internal/infra/sqlc/generated"
	"lendly/internal/pkg/pgconv"
	"lendly/internal/usecase/queries"
)

type BookingViewQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingByIDRow, error)
	ListRenterBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRenterBookingsParams) ([]sqlc.ListRenterBookingsRow, error)
	ListOwnerBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOwnerBookingsParams) ([]sqlc.ListOwnerBookingsRow, error)
	CountBlockingBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.CountBlockingBookingsParams) (int64, error)
	CountFinishedRentals(ctx context.Context, db sqlc.DBTX, arg sqlc.CountFinishedRentalsParams) (int64, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return rowToBookingView(row), nil
}

func (r *BookingReadStore) ListForRenter(ctx context.Context, renterID uuid.UUID, bucket booking.Bucket, onTime time.Time) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.ListRenterBookings(ctx, r.db, sqlc.ListRenterBookingsParams{
		RenterID: renterID,
		Bucket:   bucket.String(),
		OnTime:   pgconv.TimeToPgtype(onTime),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list renter bookings", err)
	}

	result := make([]*queries.BookingListItem, len(rows))
	for i, row := range rows {
		result[i] = toBookingListItemFromRenterRow(row)
	}
	return result, nil
}

func (r *BookingReadStore) ListForOwner(ctx context.Context, ownerID uuid.UUID, bucket booking.Bucket, onTime time.Time) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.ListOwnerBookings(ctx, r.db, sqlc.ListOwnerBookingsParams{
		OwnerID: ownerID,
		Bucket:  bucket.String(),
		OnTime:  pgconv.TimeToPgtype(onTime),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list owner bookings", err)
	}

	result := make([]*queries.BookingListItem, len(rows))
	for i, row := range rows {
		result[i] = toBookingListItemFromOwnerRow(row)
	}
	return result, nil
}

func (r *BookingReadStore) CountBlocking(ctx context.Context, itemID uuid.UUID, start, end time.Time) (int64, error) {
	count, err := r.queries.CountBlockingBookings(ctx, r.db, sqlc.CountBlockingBookingsParams{
		ItemID:    itemID,
		StartTime: pgconv.TimeToPgtype(start),
		EndTime:   pgconv.TimeToPgtype(end),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count blocking bookings", err)
	}
	return count, nil
}

func (r *BookingReadStore) CountFinishedRentals(ctx context.Context, itemID, renterID uuid.UUID, onTime time.Time) (int64, error) {
	count, err := r.queries.CountFinishedRentals(ctx, r.db, sqlc.CountFinishedRentalsParams{
		ItemID:   itemID,
		RenterID: renterID,
		OnTime:   pgconv.TimeToPgtype(onTime),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count finished rentals", err)
	}
	return count, nil
}

func rowToBookingView(row sqlc.GetBookingByIDRow) *queries.BookingView {
	return &queries.BookingView{
		ID: row.ID,
		Item: queries.ItemRef{
			ID:      row.ItemID,
			OwnerID: row.ItemOwnerID,
			Name:    row.ItemName,
		},
		Renter: queries.UserRef{
			ID:   row.RenterID,
			Name: row.RenterName,
		},
		StartTime: pgconv.TimeFromPgtype(row.StartTime),
		EndTime:   pgconv.TimeFromPgtype(row.EndTime),
		Status:    row.Status,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func toBookingListItemFromRenterRow(row sqlc.ListRenterBookingsRow) *queries.BookingListItem {
	return &queries.BookingListItem{
		ID: row.ID,
		Item: queries.ItemRef{
			ID:      row.ItemID,
			OwnerID: row.ItemOwnerID,
			Name:    row.ItemName,
		},
		Renter: queries.UserRef{
			ID:   row.RenterID,
			Name: row.RenterName,
		},
		StartTime: pgconv.TimeFromPgtype(row.StartTime),
		EndTime:   pgconv.TimeFromPgtype(row.EndTime),
		Status:    row.Status,
	}
}

func toBookingListItemFromOwnerRow(row sqlc.ListOwnerBookingsRow) *queries.BookingListItem {
	return &queries.BookingListItem{
		ID: row.ID,
		Item: queries.ItemRef{
			ID:      row.ItemID,
			OwnerID: row.ItemOwnerID,
			Name:    row.ItemName,
		},
		Renter: queries.UserRef{
			ID:   row.RenterID,
			Name: row.RenterName,
		},
		StartTime: pgconv.TimeFromPgtype(row.StartTime),
		EndTime:   pgconv.TimeFromPgtype(row.EndTime),
		Status:    row.Status,
	}
}
