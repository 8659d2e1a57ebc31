package readstore

import (
	"context"

	"github.com/google/uuid"

	"lendly/internal/infra"
	sqlc "lendly/internal/infra/sqlc/generated"
	"lendly/internal/pkg/pgconv"
	"lendly/internal/usecase/queries"
)

type RequestViewQueries interface {
	GetItemRequestByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ItemRequest, error)
	ListItemRequestsByRequester(ctx context.Context, db sqlc.DBTX, requesterID uuid.UUID) ([]sqlc.ItemRequest, error)
	ListItemRequestsOfOthers(ctx context.Context, db sqlc.DBTX, requesterID uuid.UUID) ([]sqlc.ItemRequest, error)
	ListItemsByRequestIDs(ctx context.Context, db sqlc.DBTX, requestIds []uuid.UUID) ([]sqlc.Item, error)
}

type RequestReadStore struct {
	queries RequestViewQueries
	db      sqlc.DBTX
}

func NewRequestReadStore(queries RequestViewQueries, db sqlc.DBTX) *RequestReadStore {
	return &RequestReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	row, err := r.queries.GetItemRequestByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item request by ID", err)
	}
	return requestToView(row), nil
}

func (r *RequestReadStore) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*queries.RequestView, error) {
	rows, err := r.queries.ListItemRequestsByRequester(ctx, r.db, requesterID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list own item requests", err)
	}
	return requestsToViews(rows), nil
}

func (r *RequestReadStore) ListOthers(ctx context.Context, requesterID uuid.UUID) ([]*queries.RequestView, error) {
	rows, err := r.queries.ListItemRequestsOfOthers(ctx, r.db, requesterID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list other users' item requests", err)
	}
	return requestsToViews(rows), nil
}

func (r *RequestReadStore) ItemsByRequestIDs(ctx context.Context, requestIDs []uuid.UUID) (map[uuid.UUID][]queries.ItemSummary, error) {
	rows, err := r.queries.ListItemsByRequestIDs(ctx, r.db, requestIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items by request IDs", err)
	}

	result := make(map[uuid.UUID][]queries.ItemSummary)
	for _, row := range rows {
		requestID := pgconv.UUIDPtrFromPgtype(row.RequestID)
		if requestID == nil {
			continue
		}
		result[*requestID] = append(result[*requestID], *itemToSummary(row))
	}
	return result, nil
}

func requestToView(row sqlc.ItemRequest) *queries.RequestView {
	return &queries.RequestView{
		ID:          row.ID,
		RequesterID: row.RequesterID,
		Description: row.Description,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

func requestsToViews(rows []sqlc.ItemRequest) []*queries.RequestView {
	result := make([]*queries.RequestView, len(rows))
	for i, row := range rows {
		result[i] = requestToView(row)
	}
	return result
}
