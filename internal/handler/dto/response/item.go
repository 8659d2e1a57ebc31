package response

import (
	"time"

	"lendly/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ItemResponse struct {
	ID          uuid.UUID             `json:"id"`
	OwnerID     uuid.UUID             `json:"ownerId"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Available   bool                  `json:"available"`
	RequestID   *uuid.UUID            `json:"requestId,omitempty"`
	LastBooking *BookingBriefResponse `json:"lastBooking,omitempty"`
	NextBooking *BookingBriefResponse `json:"nextBooking,omitempty"`
	Comments    []*CommentResponse    `json:"comments"`
}

type ItemSummaryResponse struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"ownerId"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Available   bool       `json:"available"`
	RequestID   *uuid.UUID `json:"requestId,omitempty"`
}

type BookingBriefResponse struct {
	ID        uuid.UUID `json:"id"`
	RenterID  uuid.UUID `json:"renterId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

type CommentResponse struct {
	ID         uuid.UUID `json:"id"`
	AuthorID   uuid.UUID `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromItemView(v *queries.ItemView) *ItemResponse {
	res := &ItemResponse{
		ID:          v.ID,
		OwnerID:     v.OwnerID,
		Name:        v.Name,
		Description: v.Description,
		Available:   v.Available,
		RequestID:   v.RequestID,
		Comments:    fromComments(v.Comments),
	}
	if v.LastBooking != nil {
		res.LastBooking = fromBookingBrief(v.LastBooking)
	}
	if v.NextBooking != nil {
		res.NextBooking = fromBookingBrief(v.NextBooking)
	}
	return res
}

func FromItemSummary(v *queries.ItemSummary) *ItemSummaryResponse {
	var res ItemSummaryResponse
	_ = copier.Copy(&res, v)
	return &res
}

func FromItemSummaries(items []*queries.ItemSummary) []*ItemSummaryResponse {
	res := make([]*ItemSummaryResponse, len(items))
	for i, it := range items {
		res[i] = FromItemSummary(it)
	}
	return res
}

func FromCommentView(v *queries.CommentView) *CommentResponse {
	var res CommentResponse
	_ = copier.Copy(&res, v)
	return &res
}

func fromBookingBrief(b *queries.BookingBrief) *BookingBriefResponse {
	return &BookingBriefResponse{
		ID:        b.ID,
		RenterID:  b.RenterID,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
	}
}

func fromComments(comments []queries.CommentView) []*CommentResponse {
	res := make([]*CommentResponse, len(comments))
	for i := range comments {
		res[i] = FromCommentView(&comments[i])
	}
	return res
}
