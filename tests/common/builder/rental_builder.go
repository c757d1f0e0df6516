//go:build unit || e2e

package builder

import (
	"time"

	"car-rental-api/internal/domain/rental"
	reqdto "car-rental-api/internal/handler/dto/request"
	sqlc "car-rental-api/internal/infra/sqlc/generated"
	"car-rental-api/internal/usecase/commands"
	"car-rental-api/internal/usecase/queries"
	"car-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RentalBuilder struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CarID     uuid.UUID
	CarName   string
	Start     time.Time
	End       time.Time
	CreatedAt time.Time
}

func NewRentalBuilder() *RentalBuilder {
	start := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)
	return &RentalBuilder{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		CarID:     uuid.New(),
		CarName:   "Toyota Corolla",
		Start:     start,
		End:       start.Add(48 * time.Hour),
		CreatedAt: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *RentalBuilder) With(mutate func(*RentalBuilder)) *RentalBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *RentalBuilder) BuildWindow() rental.Window {
	w, err := rental.NewWindow(b.Start, b.End)
	if err != nil {
		panic(err)
	}
	return w
}

func (b *RentalBuilder) BuildDomain() *rental.Rental {
	return rental.ReconstructRental(b.ID, b.UserID, b.CarID, b.BuildWindow(), b.CreatedAt)
}

func (b *RentalBuilder) BuildInfra() sqlc.Rentals {
	return sqlc.Rentals{
		ID:            b.ID,
		UserID:        b.UserID,
		CarID:         b.CarID,
		RentStartedAt: pgtype.Timestamptz{Time: b.Start, Valid: true},
		RentEndedAt:   pgtype.Timestamptz{Time: b.End, Valid: true},
		CreatedAt:     pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *RentalBuilder) BuildInfraRow() sqlc.ListRentalsByUserRow {
	return sqlc.ListRentalsByUserRow{
		ID:            b.ID,
		UserID:        b.UserID,
		CarID:         b.CarID,
		CarName:       b.CarName,
		RentStartedAt: pgtype.Timestamptz{Time: b.Start, Valid: true},
		RentEndedAt:   pgtype.Timestamptz{Time: b.End, Valid: true},
		CreatedAt:     pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *RentalBuilder) BuildView() queries.RentalView {
	return queries.RentalView{
		ID:            b.ID,
		UserID:        b.UserID,
		CarID:         b.CarID,
		CarName:       b.CarName,
		RentStartedAt: b.Start,
		RentEndedAt:   b.End,
		CreatedAt:     b.CreatedAt,
	}
}

func (b *RentalBuilder) BuildSnapshot() *shared.RentalSnapshot {
	return &shared.RentalSnapshot{
		ID:            b.ID,
		UserID:        b.UserID,
		CarID:         b.CarID,
		RentStartedAt: b.Start,
		RentEndedAt:   b.End,
		CreatedAt:     b.CreatedAt,
	}
}

func (b *RentalBuilder) BuildBookRequest() commands.BookCarRequest {
	return commands.BookCarRequest{
		CarID:  b.CarID,
		UserID: b.UserID,
		Start:  b.Start,
		End:    b.End,
	}
}

func (b *RentalBuilder) BuildRequestDTO() reqdto.RentCarRequest {
	return reqdto.RentCarRequest{
		RentStartedAt: b.Start,
		RentEndedAt:   b.End,
	}
}

// Fluent builder methods
func (b *RentalBuilder) WithCarID(carID uuid.UUID) *RentalBuilder {
	b.CarID = carID
	return b
}

func (b *RentalBuilder) WithUserID(userID uuid.UUID) *RentalBuilder {
	b.UserID = userID
	return b
}

func (b *RentalBuilder) WithWindow(start, end time.Time) *RentalBuilder {
	b.Start = start
	b.End = end
	return b
}
