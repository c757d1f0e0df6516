package queries

import (
	"context"

	"github.com/google/uuid"
)

type RentalQueries interface {
	ListUserRentals(ctx context.Context, userID uuid.UUID, pageSize, pageNumber *int) (*RentalList, error)
}

type RentalReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID, opts QueryOptions) ([]RentalView, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

type rentalQueriesImpl struct {
	readStore RentalReadStore
	paginator Paginator
}

func NewRentalQueries(readStore RentalReadStore, paginator Paginator) RentalQueries {
	return &rentalQueriesImpl{
		readStore: readStore,
		paginator: paginator,
	}
}

func (q *rentalQueriesImpl) ListUserRentals(ctx context.Context, userID uuid.UUID, pageSize, pageNumber *int) (*RentalList, error) {
	opts, err := q.paginator.ToQueryOptions(pageSize, pageNumber)
	if err != nil {
		return nil, err
	}

	rentals, err := q.readStore.ListByUser(ctx, userID, opts)
	if err != nil {
		return nil, err
	}

	total, err := q.readStore.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary, err := q.paginator.ToSummary(pageSize, pageNumber, total)
	if err != nil {
		return nil, err
	}

	return &RentalList{Rentals: rentals, Pagination: summary}, nil
}
