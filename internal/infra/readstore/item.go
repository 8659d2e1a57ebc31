package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"lendly/internal/infra"
	sqlc "lendly/internal/infra/sqlc/generated"
	"lendly/internal/pkg/pgconv"
	"lendly/internal/usecase/queries"
)

type ItemViewQueries interface {
	GetItemByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Item, error)
	ListItemsByOwner(ctx context.Context, db sqlc.DBTX, ownerID uuid.UUID) ([]sqlc.Item, error)
	SearchAvailableItems(ctx context.Context, db sqlc.DBTX, query string) ([]sqlc.Item, error)
	ListItemsByRequestIDs(ctx context.Context, db sqlc.DBTX, requestIds []uuid.UUID) ([]sqlc.Item, error)
	LastBookingsByItemIDs(ctx context.Context, db sqlc.DBTX, arg sqlc.LastBookingsByItemIDsParams) ([]sqlc.LastBookingsByItemIDsRow, error)
	NextBookingsByItemIDs(ctx context.Context, db sqlc.DBTX, arg sqlc.NextBookingsByItemIDsParams) ([]sqlc.NextBookingsByItemIDsRow, error)
	ListCommentsByItemIDs(ctx context.Context, db sqlc.DBTX, itemIds []uuid.UUID) ([]sqlc.ListCommentsByItemIDsRow, error)
	GetCommentByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetCommentByIDRow, error)
}

type ItemReadStore struct {
	queries ItemViewQueries
	db      sqlc.DBTX
}

func NewItemReadStore(queries ItemViewQueries, db sqlc.DBTX) *ItemReadStore {
	return &ItemReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ItemReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemSummary, error) {
	row, err := r.queries.GetItemByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by ID", err)
	}
	return itemToSummary(row), nil
}

func (r *ItemReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.ItemSummary, error) {
	rows, err := r.queries.ListItemsByOwner(ctx, r.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items by owner", err)
	}
	return itemsToSummaries(rows), nil
}

func (r *ItemReadStore) Search(ctx context.Context, text string) ([]*queries.ItemSummary, error) {
	rows, err := r.queries.SearchAvailableItems(ctx, r.db, text)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search items", err)
	}
	return itemsToSummaries(rows), nil
}

func (r *ItemReadStore) LastBookingsByItemIDs(ctx context.Context, itemIDs []uuid.UUID, onTime time.Time) (map[uuid.UUID]*queries.BookingBrief, error) {
	rows, err := r.queries.LastBookingsByItemIDs(ctx, r.db, sqlc.LastBookingsByItemIDsParams{
		ItemIds: itemIDs,
		OnTime:  pgconv.TimeToPgtype(onTime),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find last bookings", err)
	}

	result := make(map[uuid.UUID]*queries.BookingBrief, len(rows))
	for _, row := range rows {
		result[row.ItemID] = &queries.BookingBrief{
			ID:        row.ID,
			RenterID:  row.RenterID,
			StartTime: pgconv.TimeFromPgtype(row.StartTime),
			EndTime:   pgconv.TimeFromPgtype(row.EndTime),
		}
	}
	return result, nil
}

func (r *ItemReadStore) NextBookingsByItemIDs(ctx context.Context, itemIDs []uuid.UUID, onTime time.Time) (map[uuid.UUID]*queries.BookingBrief, error) {
	rows, err := r.queries.NextBookingsByItemIDs(ctx, r.db, sqlc.NextBookingsByItemIDsParams{
		ItemIds: itemIDs,
		OnTime:  pgconv.TimeToPgtype(onTime),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find next bookings", err)
	}

	result := make(map[uuid.UUID]*queries.BookingBrief, len(rows))
	for _, row := range rows {
		result[row.ItemID] = &queries.BookingBrief{
			ID:        row.ID,
			RenterID:  row.RenterID,
			StartTime: pgconv.TimeFromPgtype(row.StartTime),
			EndTime:   pgconv.TimeFromPgtype(row.EndTime),
		}
	}
	return result, nil
}

func (r *ItemReadStore) CommentsByItemIDs(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID][]queries.CommentView, error) {
	rows, err := r.queries.ListCommentsByItemIDs(ctx, r.db, itemIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list comments", err)
	}

	result := make(map[uuid.UUID][]queries.CommentView)
	for _, row := range rows {
		result[row.ItemID] = append(result[row.ItemID], queries.CommentView{
			ID:         row.ID,
			AuthorID:   row.AuthorID,
			AuthorName: row.AuthorName,
			Text:       row.Text,
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return result, nil
}

func (r *ItemReadStore) FindCommentByID(ctx context.Context, id uuid.UUID) (*queries.CommentView, error) {
	row, err := r.queries.GetCommentByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("comment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find comment by ID", err)
	}
	return &queries.CommentView{
		ID:         row.ID,
		AuthorID:   row.AuthorID,
		AuthorName: row.AuthorName,
		Text:       row.Text,
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func itemToSummary(row sqlc.Item) *queries.ItemSummary {
	return &queries.ItemSummary{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		Name:        row.Name,
		Description: row.Description,
		Available:   row.Available,
		RequestID:   pgconv.UUIDPtrFromPgtype(row.RequestID),
	}
}

func itemsToSummaries(rows []sqlc.Item) []*queries.ItemSummary {
	result := make([]*queries.ItemSummary, len(rows))
	for i, row := range rows {
		result[i] = itemToSummary(row)
	}
	return result
}
