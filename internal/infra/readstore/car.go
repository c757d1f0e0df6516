package readstore

import (
	"context"

	"car-rental-api/internal/infra"
	sqlc "car-rental-api/internal/infra/sqlc/generated"
	"car-rental-api/internal/pkg/pgconv"
	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CarReadQueries interface {
	ListCars(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCarsParams) ([]sqlc.Cars, error)
	CountCars(ctx context.Context, db sqlc.DBTX) (int64, error)
	GetCarByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Cars, error)
}

type CarReadStore struct {
	queries CarReadQueries
	db      sqlc.DBTX
}

func NewCarReadStore(queries CarReadQueries, db sqlc.DBTX) *CarReadStore {
	return &CarReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CarReadStore) List(ctx context.Context, opts queries.QueryOptions) ([]queries.CarView, error) {
	rows, err := r.queries.ListCars(ctx, r.db, sqlc.ListCarsParams{
		PageLimit:  int32(opts.Limit),  // #nosec G115 -- bounded by MaxPageSize
		PageOffset: int32(opts.Offset), // #nosec G115 -- resolve caps offset at MaxInt32
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cars", err)
	}

	views := make([]queries.CarView, 0, len(rows))
	for _, row := range rows {
		views = append(views, *ToCarView(row))
	}
	return views, nil
}

func (r *CarReadStore) Count(ctx context.Context) (int, error) {
	n, err := r.queries.CountCars(ctx, r.db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count cars", err)
	}
	return int(n), nil
}

func (r *CarReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CarView, error) {
	row, err := r.queries.GetCarByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find car by ID", err)
	}
	return ToCarView(row), nil
}

func ToCarView(row sqlc.Cars) *queries.CarView {
	return &queries.CarView{
		ID:                row.ID,
		Name:              row.Name,
		Price:             row.Price,
		Size:              row.Size,
		Image:             row.Image,
		IsCurrentlyRented: row.IsCurrentlyRented,
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:         pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
