package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidPeriod  = errors.New("invalid booking period")
	ErrUnknownBucket  = errors.New("unknown booking bucket")
	ErrInvalidStatus  = errors.New("invalid booking status")
	ErrAlreadyDecided = errors.New("booking is already decided")
)

type Booking struct {
	id        uuid.UUID
	itemID    uuid.UUID
	renterID  uuid.UUID
	period    Period
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewBooking(itemID, renterID uuid.UUID, period Period) *Booking {
	return &Booking{
		id:       uuid.New(),
		itemID:   itemID,
		renterID: renterID,
		period:   period,
		status:   StatusWaiting,
	}
}

func ReconstructBooking(
	id, itemID, renterID uuid.UUID,
	period Period,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		itemID:    itemID,
		renterID:  renterID,
		period:    period,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Decide settles a pending booking. Only a waiting booking changes state;
// deciding an already settled booking is a no-op and reports changed=false.
func (b *Booking) Decide(approved bool) (changed bool) {
	if b.status != StatusWaiting {
		return false
	}
	if approved {
		b.status = StatusApproved
	} else {
		b.status = StatusRejected
	}
	return true
}

func (b *Booking) IsWaiting() bool {
	return b.status == StatusWaiting
}

func (b *Booking) IsApproved() bool {
	return b.status == StatusApproved
}

// FinishedBy reports whether an approved rental has fully ended by now.
func (b *Booking) FinishedBy(now time.Time) bool {
	return b.status == StatusApproved && b.period.EndedBefore(now)
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) ItemID() uuid.UUID    { return b.itemID }
func (b *Booking) RenterID() uuid.UUID  { return b.renterID }
func (b *Booking) Period() Period       { return b.period }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
