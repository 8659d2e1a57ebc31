package shared

import (
	"time"

	"github.com/google/uuid"
)

type UserSnapshot struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type ItemSnapshot struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	Available   bool
	RequestID   *uuid.UUID
}

// Minimal snapshot for command read operations
type BookingSnapshot struct {
	ID          uuid.UUID
	ItemID      uuid.UUID
	ItemOwnerID uuid.UUID
	RenterID    uuid.UUID
	Status      string
	StartTime   time.Time
	EndTime     time.Time
}

type RequestSnapshot struct {
	ID          uuid.UUID
	RequesterID uuid.UUID
}
