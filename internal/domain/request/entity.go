package request

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyDescription = errors.New("request description must not be empty")

// ItemRequest is a wish posted by a user looking for an item to rent.
// Owners answer it by listing items that reference the request.
type ItemRequest struct {
	id          uuid.UUID
	requesterID uuid.UUID
	description string
	createdAt   time.Time
}

func NewItemRequest(requesterID uuid.UUID, description string) (*ItemRequest, error) {
	if description == "" {
		return nil, ErrEmptyDescription
	}
	return &ItemRequest{
		id:          uuid.New(),
		requesterID: requesterID,
		description: description,
	}, nil
}

func ReconstructItemRequest(
	id, requesterID uuid.UUID,
	description string,
	createdAt time.Time,
) *ItemRequest {
	return &ItemRequest{
		id:          id,
		requesterID: requesterID,
		description: description,
		createdAt:   createdAt,
	}
}

func (r *ItemRequest) ID() uuid.UUID          { return r.id }
func (r *ItemRequest) RequesterID() uuid.UUID { return r.requesterID }
func (r *ItemRequest) Description() string    { return r.description }
func (r *ItemRequest) CreatedAt() time.Time   { return r.createdAt }
