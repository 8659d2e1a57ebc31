package repository

import (
	"context"

	"github.com/google/uuid"

	"lendly/internal/domain/comment"
	"lendly/internal/infra"
	sqlc "lendly/internal/infra/sqlc/generated"
)

type CommentWriteQueries interface {
	CreateComment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCommentParams) (uuid.UUID, error)
}

type CommentRepository struct {
	queries CommentWriteQueries
}

func NewCommentRepository(queries CommentWriteQueries) *CommentRepository {
	return &CommentRepository{queries: queries}
}

func (r *CommentRepository) Create(ctx context.Context, tx sqlc.DBTX, c *comment.Comment) (uuid.UUID, error) {
	resultID, err := r.queries.CreateComment(ctx, tx, sqlc.CreateCommentParams{
		ID:       c.ID(),
		ItemID:   c.ItemID(),
		AuthorID: c.AuthorID(),
		Text:     c.Text(),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create comment", err)
	}
	return resultID, nil
}
