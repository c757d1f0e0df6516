package readstore

import (
	"context"

	"car-rental-api/internal/infra"
	sqlc "car-rental-api/internal/infra/sqlc/generated"
	"car-rental-api/internal/pkg/pgconv"
	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type RentalReadQueries interface {
	ListRentalsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRentalsByUserParams) ([]sqlc.ListRentalsByUserRow, error)
	CountRentalsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error)
}

type RentalReadStore struct {
	queries RentalReadQueries
	db      sqlc.DBTX
}

func NewRentalReadStore(queries RentalReadQueries, db sqlc.DBTX) *RentalReadStore {
	return &RentalReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RentalReadStore) ListByUser(ctx context.Context, userID uuid.UUID, opts queries.QueryOptions) ([]queries.RentalView, error) {
	rows, err := r.queries.ListRentalsByUser(ctx, r.db, sqlc.ListRentalsByUserParams{
		UserID:     userID,
		PageLimit:  int32(opts.Limit),  // #nosec G115 -- bounded by MaxPageSize
		PageOffset: int32(opts.Offset), // #nosec G115 -- resolve caps offset at MaxInt32
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rentals by user", err)
	}

	views := make([]queries.RentalView, 0, len(rows))
	for _, row := range rows {
		views = append(views, queries.RentalView{
			ID:            row.ID,
			UserID:        row.UserID,
			CarID:         row.CarID,
			CarName:       row.CarName,
			RentStartedAt: pgconv.TimeFromPgtype(row.RentStartedAt),
			RentEndedAt:   pgconv.TimeFromPgtype(row.RentEndedAt),
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return views, nil
}

func (r *RentalReadStore) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	n, err := r.queries.CountRentalsByUser(ctx, r.db, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count rentals by user", err)
	}
	return int(n), nil
}
