package queries

import (
	"context"

	"car-rental-api/internal/infra"
	"car-rental-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCarNotFound = errs.New("car not found")

type CarQueries interface {
	ListCars(ctx context.Context, pageSize, pageNumber *int) (*CarList, error)
	GetCar(ctx context.Context, id uuid.UUID) (*CarView, error)
}

type CarReadStore interface {
	List(ctx context.Context, opts QueryOptions) ([]CarView, error)
	Count(ctx context.Context) (int, error)
	FindByID(ctx context.Context, id uuid.UUID) (*CarView, error)
}

type carQueriesImpl struct {
	readStore CarReadStore
	paginator Paginator
}

func NewCarQueries(readStore CarReadStore, paginator Paginator) CarQueries {
	return &carQueriesImpl{
		readStore: readStore,
		paginator: paginator,
	}
}

func (q *carQueriesImpl) ListCars(ctx context.Context, pageSize, pageNumber *int) (*CarList, error) {
	opts, err := q.paginator.ToQueryOptions(pageSize, pageNumber)
	if err != nil {
		return nil, err
	}

	cars, err := q.readStore.List(ctx, opts)
	if err != nil {
		return nil, err
	}

	total, err := q.readStore.Count(ctx)
	if err != nil {
		return nil, err
	}

	summary, err := q.paginator.ToSummary(pageSize, pageNumber, total)
	if err != nil {
		return nil, err
	}

	return &CarList{Cars: cars, Pagination: summary}, nil
}

func (q *carQueriesImpl) GetCar(ctx context.Context, id uuid.UUID) (*CarView, error) {
	car, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, err
	}
	return car, nil
}
