//go:build unit || e2e

package builder

import (
	"time"

	dombooking "lendly/internal/domain/booking"
	reqdto "lendly/internal/handler/dto/request"
	sqlc "lendly/internal/infra/sqlc/generated"
	"lendly/internal/usecase/queries"
	"lendly/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingBuilder struct {
	ID         uuid.UUID
	ItemID     uuid.UUID
	ItemName   string
	OwnerID    uuid.UUID
	RenterID   uuid.UUID
	RenterName string
	StartTime  time.Time
	EndTime    time.Time
	Status     dombooking.Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		ID:         uuid.New(),
		ItemID:     uuid.New(),
		ItemName:   "Camping Tent",
		OwnerID:    uuid.New(),
		RenterID:   uuid.New(),
		RenterName: "Hanako Suzuki",
		StartTime:  now.Add(24 * time.Hour),
		EndTime:    now.Add(48 * time.Hour),
		Status:     dombooking.StatusWaiting,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithPeriod(start, end time.Time) *BookingBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *BookingBuilder) WithStatus(status dombooking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithRenterID(renterID uuid.UUID) *BookingBuilder {
	b.RenterID = renterID
	return b
}

func (b *BookingBuilder) WithItemID(itemID uuid.UUID) *BookingBuilder {
	b.ItemID = itemID
	return b
}

func (b *BookingBuilder) WithOwnerID(ownerID uuid.UUID) *BookingBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *BookingBuilder) AsApproved() *BookingBuilder {
	b.Status = dombooking.StatusApproved
	return b
}

func (b *BookingBuilder) AsFinished() *BookingBuilder {
	b.Status = dombooking.StatusApproved
	b.StartTime = time.Now().Add(-72 * time.Hour)
	b.EndTime = time.Now().Add(-48 * time.Hour)
	return b
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	period, err := dombooking.NewPeriod(b.StartTime, b.EndTime)
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(b.ItemID, b.RenterID, period), nil
}

func (b *BookingBuilder) BuildReconstructed() *dombooking.Booking {
	return dombooking.ReconstructBooking(
		b.ID, b.ItemID, b.RenterID,
		dombooking.ReconstructPeriod(b.StartTime, b.EndTime),
		b.Status,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *BookingBuilder) BuildInfra() sqlc.Booking {
	return sqlc.Booking{
		ID:        b.ID,
		ItemID:    b.ItemID,
		RenterID:  b.RenterID,
		StartTime: pgtype.Timestamptz{Time: b.StartTime, Valid: true},
		EndTime:   pgtype.Timestamptz{Time: b.EndTime, Valid: true},
		Status:    b.Status.String(),
		CreatedAt: pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func (b *BookingBuilder) BuildViewQuery() *queries.BookingView {
	return &queries.BookingView{
		ID: b.ID,
		Item: queries.ItemRef{
			ID:      b.ItemID,
			OwnerID: b.OwnerID,
			Name:    b.ItemName,
		},
		Renter: queries.UserRef{
			ID:   b.RenterID,
			Name: b.RenterName,
		},
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Status:    b.Status.String(),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID: b.ID,
		Item: queries.ItemRef{
			ID:      b.ItemID,
			OwnerID: b.OwnerID,
			Name:    b.ItemName,
		},
		Renter: queries.UserRef{
			ID:   b.RenterID,
			Name: b.RenterName,
		},
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Status:    b.Status.String(),
	}
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:          b.ID,
		ItemID:      b.ItemID,
		ItemOwnerID: b.OwnerID,
		RenterID:    b.RenterID,
		Status:      b.Status.String(),
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ItemID:    b.ItemID,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
	}
}
