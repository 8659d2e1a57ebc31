package repository

import (
	"context"

	"github.com/google/uuid"

	"lendly/internal/domain/item"
	"lendly/internal/infra"
	"lendly/internal/infra/repository/converter"
	sqlc "lendly/internal/infra/sqlc/generated"
)

type ItemWriteQueries interface {
	CreateItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateItemParams) (uuid.UUID, error)
	UpdateItem(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateItemParams) (int64, error)
}

type ItemRepository struct {
	queries ItemWriteQueries
}

func NewItemRepository(queries ItemWriteQueries) *ItemRepository {
	return &ItemRepository{queries: queries}
}

func (r *ItemRepository) Create(ctx context.Context, tx sqlc.DBTX, it *item.Item) (uuid.UUID, error) {
	resultID, err := r.queries.CreateItem(ctx, tx, converter.ItemToInfra(it))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create item", err)
	}
	return resultID, nil
}

func (r *ItemRepository) Update(ctx context.Context, tx sqlc.DBTX, it *item.Item) error {
	rows, err := r.queries.UpdateItem(ctx, tx, converter.ItemToUpdateParams(it))
	if err != nil {
		return infra.WrapRepoErr("failed to update item", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}
