package response

import (
	"time"

	"lendly/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID         uuid.UUID `json:"id"`
	ItemID     uuid.UUID `json:"itemId"`
	ItemName   string    `json:"itemName"`
	OwnerID    uuid.UUID `json:"ownerId"`
	RenterID   uuid.UUID `json:"renterId"`
	RenterName string    `json:"renterName"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	ID         uuid.UUID `json:"id"`
	ItemID     uuid.UUID `json:"itemId"`
	ItemName   string    `json:"itemName"`
	OwnerID    uuid.UUID `json:"ownerId"`
	RenterID   uuid.UUID `json:"renterId"`
	RenterName string    `json:"renterName"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	Status     string    `json:"status"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:         v.ID,
		ItemID:     v.Item.ID,
		ItemName:   v.Item.Name,
		OwnerID:    v.Item.OwnerID,
		RenterID:   v.Renter.ID,
		RenterName: v.Renter.Name,
		StartTime:  v.StartTime,
		EndTime:    v.EndTime,
		Status:     v.Status,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

func FromBookingList(items []*queries.BookingListItem) []*BookingListResponse {
	res := make([]*BookingListResponse, len(items))
	for i, it := range items {
		res[i] = &BookingListResponse{
			ID:         it.ID,
			ItemID:     it.Item.ID,
			ItemName:   it.Item.Name,
			OwnerID:    it.Item.OwnerID,
			RenterID:   it.Renter.ID,
			RenterName: it.Renter.Name,
			StartTime:  it.StartTime,
			EndTime:    it.EndTime,
			Status:     it.Status,
		}
	}
	return res
}
