package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CommandReads exposes the minimal lookups command handlers need for
// validation. Full read models live on the query side.
type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	ItemByID(ctx context.Context, id uuid.UUID) (*ItemSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	RequestByID(ctx context.Context, id uuid.UUID) (*RequestSnapshot, error)
	BlockingBookingCount(ctx context.Context, itemID uuid.UUID, start, end time.Time) (int64, error)
	FinishedRentalCount(ctx context.Context, itemID, renterID uuid.UUID, now time.Time) (int64, error)
}
