//go:build unit || e2e

package builder

import (
	"time"

	domitem "lendly/internal/domain/item"
	reqdto "lendly/internal/handler/dto/request"
	sqlc "lendly/internal/infra/sqlc/generated"
	"lendly/internal/usecase/queries"
	"lendly/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ItemBuilder struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	Available   bool
	RequestID   *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewItemBuilder() *ItemBuilder {
	now := time.Now()
	return &ItemBuilder{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		Name:        "Camping Tent",
		Description: "4-person tent, waterproof",
		Available:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (i *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(i)
	return i
}

func (i *ItemBuilder) WithOwnerID(ownerID uuid.UUID) *ItemBuilder {
	i.OwnerID = ownerID
	return i
}

func (i *ItemBuilder) WithName(name string) *ItemBuilder {
	i.Name = name
	return i
}

func (i *ItemBuilder) WithDescription(description string) *ItemBuilder {
	i.Description = description
	return i
}

func (i *ItemBuilder) WithAvailable(available bool) *ItemBuilder {
	i.Available = available
	return i
}

func (i *ItemBuilder) WithRequestID(requestID uuid.UUID) *ItemBuilder {
	i.RequestID = &requestID
	return i
}

func (i *ItemBuilder) BuildDomain() (*domitem.Item, error) {
	return domitem.NewItem(i.OwnerID, i.Name, i.Description, i.Available, i.RequestID)
}

func (i *ItemBuilder) BuildInfra() sqlc.Item {
	requestID := pgtype.UUID{}
	if i.RequestID != nil {
		requestID = pgtype.UUID{Bytes: *i.RequestID, Valid: true}
	}
	return sqlc.Item{
		ID:          i.ID,
		OwnerID:     i.OwnerID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		RequestID:   requestID,
		CreatedAt:   pgtype.Timestamptz{Time: i.CreatedAt, Valid: true},
		UpdatedAt:   pgtype.Timestamptz{Time: i.UpdatedAt, Valid: true},
	}
}

func (i *ItemBuilder) BuildSummary() *queries.ItemSummary {
	return &queries.ItemSummary{
		ID:          i.ID,
		OwnerID:     i.OwnerID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		RequestID:   i.RequestID,
	}
}

func (i *ItemBuilder) BuildView() *queries.ItemView {
	return &queries.ItemView{
		ID:          i.ID,
		OwnerID:     i.OwnerID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		RequestID:   i.RequestID,
		Comments:    []queries.CommentView{},
	}
}

func (i *ItemBuilder) BuildSnapshot() *shared.ItemSnapshot {
	return &shared.ItemSnapshot{
		ID:          i.ID,
		OwnerID:     i.OwnerID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		RequestID:   i.RequestID,
	}
}

func (i *ItemBuilder) BuildCreateRequestDTO() reqdto.CreateItemRequest {
	available := i.Available
	return reqdto.CreateItemRequest{
		Name:        i.Name,
		Description: i.Description,
		Available:   &available,
		RequestID:   i.RequestID,
	}
}
