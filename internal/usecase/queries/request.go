package queries

import (
	"context"

	"github.com/google/uuid"

	"lendly/internal/infra"
	"lendly/internal/pkg/errs"
)

var ErrRequestNotFound = errs.New("item request not found")

type RequestQueries interface {
	GetByID(ctx context.Context, viewerID, id uuid.UUID) (*RequestView, error)
	ListOwn(ctx context.Context, requesterID uuid.UUID) ([]*RequestView, error)
	ListOthers(ctx context.Context, requesterID uuid.UUID) ([]*RequestView, error)
}

type RequestViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*RequestView, error)
	ListOthers(ctx context.Context, requesterID uuid.UUID) ([]*RequestView, error)
	ItemsByRequestIDs(ctx context.Context, requestIDs []uuid.UUID) (map[uuid.UUID][]ItemSummary, error)
}

type requestQueriesImpl struct {
	repo      RequestViewRepo
	userStore UserReadStore
}

func NewRequestQueries(repo RequestViewRepo, userStore UserReadStore) RequestQueries {
	return &requestQueriesImpl{
		repo:      repo,
		userStore: userStore,
	}
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, viewerID, id uuid.UUID) (*RequestView, error) {
	if err := q.ensureUserExists(ctx, viewerID); err != nil {
		return nil, err
	}

	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	if err := q.attachItems(ctx, []*RequestView{view}); err != nil {
		return nil, err
	}
	return view, nil
}

func (q *requestQueriesImpl) ListOwn(ctx context.Context, requesterID uuid.UUID) ([]*RequestView, error) {
	if err := q.ensureUserExists(ctx, requesterID); err != nil {
		return nil, err
	}

	views, err := q.repo.ListByRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if err := q.attachItems(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func (q *requestQueriesImpl) ListOthers(ctx context.Context, requesterID uuid.UUID) ([]*RequestView, error) {
	if err := q.ensureUserExists(ctx, requesterID); err != nil {
		return nil, err
	}

	views, err := q.repo.ListOthers(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if err := q.attachItems(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

// attachItems fills each request view with the items listed in answer to it.
func (q *requestQueriesImpl) attachItems(ctx context.Context, views []*RequestView) error {
	if len(views) == 0 {
		return nil
	}

	requestIDs := make([]uuid.UUID, len(views))
	for i, v := range views {
		requestIDs[i] = v.ID
	}

	items, err := q.repo.ItemsByRequestIDs(ctx, requestIDs)
	if err != nil {
		return err
	}

	for _, v := range views {
		v.Items = items[v.ID]
		if v.Items == nil {
			v.Items = []ItemSummary{}
		}
	}
	return nil
}

func (q *requestQueriesImpl) ensureUserExists(ctx context.Context, userID uuid.UUID) error {
	_, err := q.userStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrActorNotFound
		}
		return err
	}
	return nil
}
