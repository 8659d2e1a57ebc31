package converter

import (
	"lendly/internal/domain/item"
	sqlc "lendly/internal/infra/sqlc/generated"
	"lendly/internal/pkg/pgconv"
)

func ItemToInfra(it *item.Item) sqlc.CreateItemParams {
	return sqlc.CreateItemParams{
		ID:          it.ID(),
		OwnerID:     it.OwnerID(),
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.Available(),
		RequestID:   pgconv.UUIDPtrToPgtype(it.RequestID()),
	}
}

func ItemToUpdateParams(it *item.Item) sqlc.UpdateItemParams {
	return sqlc.UpdateItemParams{
		ID:          it.ID(),
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.Available(),
	}
}
