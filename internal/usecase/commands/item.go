package commands

import (
	"context"

	"github.com/google/uuid"

	"lendly/internal/domain/comment"
	"lendly/internal/domain/item"
	"lendly/internal/infra"
	"lendly/internal/pkg/clock"
	"lendly/internal/pkg/errs"
	"lendly/internal/usecase/queries"
	"lendly/internal/usecase/shared"
)

var (
	ErrRequestNotFound   = errs.New("item request not found")
	ErrItemNotOwned      = errs.New("item not owned by user")
	ErrCommentNotAllowed = errs.New("commenting requires a finished rental of the item")
	ErrDomainValidation  = errs.New("domain validation error")
)

type CreateItemRequest struct {
	Name        string
	Description string
	Available   bool
	RequestID   *uuid.UUID
}

type UpdateItemRequest struct {
	Name        *string
	Description *string
	Available   *bool
}

type AddCommentRequest struct {
	Text string
}

type CommentViewFinder interface {
	FindCommentByID(ctx context.Context, id uuid.UUID) (*queries.CommentView, error)
}

type ItemCommands interface {
	CreateItem(ctx context.Context, req CreateItemRequest, ownerID uuid.UUID) (*queries.ItemSummary, error)
	UpdateItem(ctx context.Context, itemID uuid.UUID, req UpdateItemRequest, actorID uuid.UUID) (*queries.ItemSummary, error)
	AddComment(ctx context.Context, itemID uuid.UUID, req AddCommentRequest, authorID uuid.UUID) (*queries.CommentView, error)
}

type itemUseCaseImpl struct {
	uow         shared.UnitOfWork
	viewRepo    queries.ItemViewRepo
	commentView CommentViewFinder
	clock       clock.Clock
}

func NewItemUseCase(uow shared.UnitOfWork, viewRepo queries.ItemViewRepo, commentView CommentViewFinder, clk clock.Clock) ItemCommands {
	return &itemUseCaseImpl{
		uow:         uow,
		viewRepo:    viewRepo,
		commentView: commentView,
		clock:       clk,
	}
}

func (uc *itemUseCaseImpl) CreateItem(ctx context.Context, req CreateItemRequest, ownerID uuid.UUID) (*queries.ItemSummary, error) {
	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, rerr := tx.Reads().UserByID(ctx, ownerID); rerr != nil {
			if infra.IsKind(rerr, infra.KindNotFound) {
				return ErrActorNotFound
			}
			return rerr
		}

		if req.RequestID != nil {
			if _, rerr := tx.Reads().RequestByID(ctx, *req.RequestID); rerr != nil {
				if infra.IsKind(rerr, infra.KindNotFound) {
					return ErrRequestNotFound
				}
				return rerr
			}
		}

		entity, derr := item.NewItem(ownerID, req.Name, req.Description, req.Available, req.RequestID)
		if derr != nil {
			return errs.Mark(derr, ErrDomainValidation)
		}

		id, rerr := tx.Items().Create(ctx, tx.DB(), entity)
		if rerr != nil {
			return rerr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	summary, err := uc.viewRepo.FindByID(ctx, createdID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseFailure)
	}
	return summary, nil
}

func (uc *itemUseCaseImpl) UpdateItem(ctx context.Context, itemID uuid.UUID, req UpdateItemRequest, actorID uuid.UUID) (*queries.ItemSummary, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, rerr := tx.Reads().ItemByID(ctx, itemID)
		if rerr != nil {
			if infra.IsKind(rerr, infra.KindNotFound) {
				return ErrItemNotFound
			}
			return rerr
		}

		if snap.OwnerID != actorID {
			return ErrItemNotOwned
		}

		entity := item.ReconstructItem(
			snap.ID,
			snap.OwnerID,
			snap.Name,
			snap.Description,
			snap.Available,
			snap.RequestID,
			uc.clock.Now(), uc.clock.Now(),
		)
		if derr := entity.ApplyPatch(req.Name, req.Description, req.Available); derr != nil {
			return errs.Mark(derr, ErrDomainValidation)
		}

		return tx.Items().Update(ctx, tx.DB(), entity)
	})
	if err != nil {
		return nil, err
	}

	summary, err := uc.viewRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseFailure)
	}
	return summary, nil
}

// AddComment lets a renter leave feedback once an approved rental of the item
// has fully ended.
func (uc *itemUseCaseImpl) AddComment(ctx context.Context, itemID uuid.UUID, req AddCommentRequest, authorID uuid.UUID) (*queries.CommentView, error) {
	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, rerr := tx.Reads().UserByID(ctx, authorID); rerr != nil {
			if infra.IsKind(rerr, infra.KindNotFound) {
				return ErrActorNotFound
			}
			return rerr
		}

		if _, rerr := tx.Reads().ItemByID(ctx, itemID); rerr != nil {
			if infra.IsKind(rerr, infra.KindNotFound) {
				return ErrItemNotFound
			}
			return rerr
		}

		finished, rerr := tx.Reads().FinishedRentalCount(ctx, itemID, authorID, uc.clock.Now())
		if rerr != nil {
			return rerr
		}
		if finished == 0 {
			return ErrCommentNotAllowed
		}

		entity, derr := comment.NewComment(itemID, authorID, req.Text)
		if derr != nil {
			return errs.Mark(derr, ErrDomainValidation)
		}

		id, rerr := tx.Comments().Create(ctx, tx.DB(), entity)
		if rerr != nil {
			return rerr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := uc.commentView.FindCommentByID(ctx, createdID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseFailure)
	}
	return view, nil
}
