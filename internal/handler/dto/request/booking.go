package request

import (
	"time"

	"github.com/google/uuid"

	"lendly/internal/usecase/commands"
)

type CreateBookingRequest struct {
	ItemID    uuid.UUID `json:"item_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

func (r CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		ItemID:    r.ItemID,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}
