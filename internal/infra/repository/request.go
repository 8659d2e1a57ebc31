package repository

import (
	"context"

	"github.com/google/uuid"

	"lendly/internal/domain/request"
	"lendly/internal/infra"
	sqlc "lendly/internal/infra/sqlc/generated"
)

type RequestWriteQueries interface {
	CreateItemRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateItemRequestParams) (uuid.UUID, error)
}

type RequestRepository struct {
	queries RequestWriteQueries
}

func NewRequestRepository(queries RequestWriteQueries) *RequestRepository {
	return &RequestRepository{queries: queries}
}

func (r *RequestRepository) Create(ctx context.Context, tx sqlc.DBTX, req *request.ItemRequest) (uuid.UUID, error) {
	resultID, err := r.queries.CreateItemRequest(ctx, tx, sqlc.CreateItemRequestParams{
		ID:          req.ID(),
		RequesterID: req.RequesterID(),
		Description: req.Description(),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create item request", err)
	}
	return resultID, nil
}
