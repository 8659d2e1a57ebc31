package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ItemRef struct {
	ID      uuid.UUID `json:"id"`
	OwnerID uuid.UUID `json:"owner_id"`
	Name    string    `json:"name"`
}

type UserRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BookingView struct {
	ID        uuid.UUID `json:"id"`
	Item      ItemRef   `json:"item"`
	Renter    UserRef   `json:"renter"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID        uuid.UUID `json:"id"`
	Item      ItemRef   `json:"item"`
	Renter    UserRef   `json:"renter"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`
}

// BookingBrief is the nearest-booking annotation attached to owner item views.
type BookingBrief struct {
	ID        uuid.UUID `json:"id"`
	RenterID  uuid.UUID `json:"renter_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

type CommentView struct {
	ID         uuid.UUID `json:"id"`
	AuthorID   uuid.UUID `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

type ItemSummary struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"owner_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Available   bool       `json:"available"`
	RequestID   *uuid.UUID `json:"request_id,omitempty"`
}

type ItemView struct {
	ID          uuid.UUID     `json:"id"`
	OwnerID     uuid.UUID     `json:"owner_id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Available   bool          `json:"available"`
	RequestID   *uuid.UUID    `json:"request_id,omitempty"`
	LastBooking *BookingBrief `json:"last_booking,omitempty"`
	NextBooking *BookingBrief `json:"next_booking,omitempty"`
	Comments    []CommentView `json:"comments"`
}

type RequestView struct {
	ID          uuid.UUID     `json:"id"`
	RequesterID uuid.UUID     `json:"requester_id"`
	Description string        `json:"description"`
	CreatedAt   time.Time     `json:"created_at"`
	Items       []ItemSummary `json:"items"`
}
