package repository

import (
	"context"
	"time"

	"car-rental-api/internal/domain/car"
	"car-rental-api/internal/infra"
	sqlc "car-rental-api/internal/infra/sqlc/generated"
	"car-rental-api/internal/pkg/pgconv"
	"car-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CarWriteQueries interface {
	CreateCar(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCarParams) (sqlc.Cars, error)
	UpdateCar(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCarParams) (sqlc.Cars, error)
	DeleteCar(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	LockCar(ctx context.Context, db sqlc.DBTX, carID uuid.UUID) error
	SyncCarRentedFlags(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) (int64, error)
	GetCarByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Cars, error)
}

type CarRepository struct {
	queries CarWriteQueries
}

func NewCarRepository(queries CarWriteQueries) *CarRepository {
	return &CarRepository{queries: queries}
}

func (r *CarRepository) Create(ctx context.Context, tx sqlc.DBTX, c *car.Car) (uuid.UUID, error) {
	row, err := r.queries.CreateCar(ctx, tx, sqlc.CreateCarParams{
		ID:                c.ID(),
		Name:              c.Name(),
		Price:             c.Price().Amount(),
		Size:              c.Size().String(),
		Image:             c.Image().String(),
		IsCurrentlyRented: c.IsCurrentlyRented(),
		CreatedAt:         pgconv.TimeToPgtype(c.CreatedAt()),
		UpdatedAt:         pgconv.TimeToPgtype(c.UpdatedAt()),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create car", err)
	}
	return row.ID, nil
}

func (r *CarRepository) Update(ctx context.Context, tx sqlc.DBTX, c *car.Car) error {
	_, err := r.queries.UpdateCar(ctx, tx, sqlc.UpdateCarParams{
		ID:                c.ID(),
		Name:              c.Name(),
		Price:             c.Price().Amount(),
		Size:              c.Size().String(),
		Image:             c.Image().String(),
		IsCurrentlyRented: c.IsCurrentlyRented(),
		UpdatedAt:         pgconv.TimeToPgtype(c.UpdatedAt()),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to update car", err)
	}
	return nil
}

func (r *CarRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	if _, err := r.queries.DeleteCar(ctx, tx, id); err != nil {
		return infra.WrapRepoErr("failed to delete car", err)
	}
	return nil
}

func (r *CarRepository) Lock(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	if err := r.queries.LockCar(ctx, tx, id); err != nil {
		return infra.WrapRepoErr("failed to lock car", err)
	}
	return nil
}

func (r *CarRepository) SyncRentedFlags(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error) {
	n, err := r.queries.SyncCarRentedFlags(ctx, tx, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sync rented flags", err)
	}
	return n, nil
}

func (r *CarRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*shared.CarSnapshot, error) {
	row, err := r.queries.GetCarByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find car by ID", err)
	}
	return &shared.CarSnapshot{
		ID:                row.ID,
		Name:              row.Name,
		Price:             row.Price,
		Size:              row.Size,
		Image:             row.Image,
		IsCurrentlyRented: row.IsCurrentlyRented,
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:         pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
