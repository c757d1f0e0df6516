package repository

import (
	"context"

	"car-rental-api/internal/domain/rental"
	"car-rental-api/internal/infra"
	sqlc "car-rental-api/internal/infra/sqlc/generated"
	"car-rental-api/internal/pkg/pgconv"
	"car-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type RentalWriteQueries interface {
	CreateRental(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRentalParams) (sqlc.Rentals, error)
	FindContainedRental(ctx context.Context, db sqlc.DBTX, arg sqlc.FindContainedRentalParams) (sqlc.Rentals, error)
}

type RentalRepository struct {
	queries RentalWriteQueries
}

func NewRentalRepository(queries RentalWriteQueries) *RentalRepository {
	return &RentalRepository{queries: queries}
}

func (r *RentalRepository) Create(ctx context.Context, tx sqlc.DBTX, rent *rental.Rental) (*shared.RentalSnapshot, error) {
	row, err := r.queries.CreateRental(ctx, tx, sqlc.CreateRentalParams{
		ID:            rent.ID(),
		UserID:        rent.UserID(),
		CarID:         rent.CarID(),
		RentStartedAt: pgconv.TimeToPgtype(rent.Window().Start()),
		RentEndedAt:   pgconv.TimeToPgtype(rent.Window().End()),
		CreatedAt:     pgconv.TimeToPgtype(rent.CreatedAt()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create rental", err)
	}
	return toRentalSnapshot(row), nil
}

// FindContained returns the earliest rental of carID that starts at or after the window start
// and ends at or before the window end.
func (r *RentalRepository) FindContained(ctx context.Context, tx sqlc.DBTX, carID uuid.UUID, window rental.Window) (*shared.RentalSnapshot, error) {
	row, err := r.queries.FindContainedRental(ctx, tx, sqlc.FindContainedRentalParams{
		CarID:         carID,
		RentStartedAt: pgconv.TimeToPgtype(window.Start()),
		RentEndedAt:   pgconv.TimeToPgtype(window.End()),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no contained rental", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find contained rental", err)
	}
	return toRentalSnapshot(row), nil
}

func toRentalSnapshot(row sqlc.Rentals) *shared.RentalSnapshot {
	return &shared.RentalSnapshot{
		ID:            row.ID,
		UserID:        row.UserID,
		CarID:         row.CarID,
		RentStartedAt: pgconv.TimeFromPgtype(row.RentStartedAt),
		RentEndedAt:   pgconv.TimeFromPgtype(row.RentEndedAt),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
