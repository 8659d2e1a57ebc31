package converter

import (
	"lendly/internal/domain/booking"
	sqlc "lendly/internal/infra/sqlc/generated"
	"lendly/internal/pkg/pgconv"
)

func BookingToInfra(b *booking.Booking) sqlc.CreateBookingParams {
	period := b.Period()
	return sqlc.CreateBookingParams{
		ID:        b.ID(),
		ItemID:    b.ItemID(),
		RenterID:  b.RenterID(),
		StartTime: pgconv.TimeToPgtype(period.Start()),
		EndTime:   pgconv.TimeToPgtype(period.End()),
		Status:    b.Status().String(),
	}
}
