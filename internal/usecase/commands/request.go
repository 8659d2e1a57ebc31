package commands

import (
	"context"

	"github.com/google/uuid"

	"lendly/internal/domain/request"
	"lendly/internal/infra"
	"lendly/internal/pkg/errs"
	"lendly/internal/usecase/queries"
	"lendly/internal/usecase/shared"
)

type CreateItemRequestRequest struct {
	Description string
}

type RequestCommands interface {
	CreateRequest(ctx context.Context, req CreateItemRequestRequest, requesterID uuid.UUID) (*queries.RequestView, error)
}

type requestUseCaseImpl struct {
	uow      shared.UnitOfWork
	viewRepo queries.RequestViewRepo
}

func NewRequestUseCase(uow shared.UnitOfWork, viewRepo queries.RequestViewRepo) RequestCommands {
	return &requestUseCaseImpl{
		uow:      uow,
		viewRepo: viewRepo,
	}
}

func (uc *requestUseCaseImpl) CreateRequest(ctx context.Context, req CreateItemRequestRequest, requesterID uuid.UUID) (*queries.RequestView, error) {
	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, rerr := tx.Reads().UserByID(ctx, requesterID); rerr != nil {
			if infra.IsKind(rerr, infra.KindNotFound) {
				return ErrActorNotFound
			}
			return rerr
		}

		entity, derr := request.NewItemRequest(requesterID, req.Description)
		if derr != nil {
			return errs.Mark(derr, ErrDomainValidation)
		}

		id, rerr := tx.Requests().Create(ctx, tx.DB(), entity)
		if rerr != nil {
			return rerr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := uc.viewRepo.FindByID(ctx, createdID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseFailure)
	}
	if view.Items == nil {
		view.Items = []queries.ItemSummary{}
	}
	return view, nil
}
