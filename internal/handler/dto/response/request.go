package response

import (
	"time"

	"lendly/internal/usecase/queries"

	"github.com/google/uuid"
)

type RequestResponse struct {
	ID          uuid.UUID              `json:"id"`
	RequesterID uuid.UUID              `json:"requesterId"`
	Description string                 `json:"description"`
	CreatedAt   time.Time              `json:"createdAt"`
	Items       []*ItemSummaryResponse `json:"items"`
}

func FromRequestView(v *queries.RequestView) *RequestResponse {
	items := make([]*ItemSummaryResponse, len(v.Items))
	for i := range v.Items {
		items[i] = FromItemSummary(&v.Items[i])
	}
	return &RequestResponse{
		ID:          v.ID,
		RequesterID: v.RequesterID,
		Description: v.Description,
		CreatedAt:   v.CreatedAt,
		Items:       items,
	}
}

func FromRequestList(views []*queries.RequestView) []*RequestResponse {
	res := make([]*RequestResponse, len(views))
	for i, v := range views {
		res[i] = FromRequestView(v)
	}
	return res
}
