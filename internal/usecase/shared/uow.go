package shared

import (
	"context"
	"time"

	"car-rental-api/internal/domain/car"
	"car-rental-api/internal/domain/rental"
	sqlc "car-rental-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Cars() CarRepository
	Rentals() RentalRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	CarByID(ctx context.Context, id uuid.UUID) (*CarSnapshot, error)
	// ContainedRental returns the earliest rental of the car whose window lies within window.
	ContainedRental(ctx context.Context, carID uuid.UUID, window rental.Window) (*RentalSnapshot, error)
}

type CarRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *car.Car) (uuid.UUID, error)
	Update(ctx context.Context, tx sqlc.DBTX, c *car.Car) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	// Lock serializes bookings of one car until the surrounding transaction ends.
	Lock(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	SyncRentedFlags(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error)
}

type RentalRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, r *rental.Rental) (*RentalSnapshot, error)
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
}
