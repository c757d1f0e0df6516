//go:build unit || e2e

package builder

import (
	"time"

	"car-rental-api/internal/domain/car"
	reqdto "car-rental-api/internal/handler/dto/request"
	sqlc "car-rental-api/internal/infra/sqlc/generated"
	"car-rental-api/internal/usecase/commands"
	"car-rental-api/internal/usecase/queries"
	"car-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CarBuilder struct {
	ID                uuid.UUID
	Name              string
	Price             int64
	Size              string
	Image             string
	IsCurrentlyRented bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func NewCarBuilder() *CarBuilder {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	return &CarBuilder{
		ID:        uuid.New(),
		Name:      "Toyota Corolla",
		Price:     5000,
		Size:      "Medium",
		Image:     "https://cdn.example.com/cars/corolla.png",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *CarBuilder) With(mutate func(*CarBuilder)) *CarBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *CarBuilder) BuildAttributes() car.Attributes {
	return car.Attributes{
		Name:  b.Name,
		Price: b.Price,
		Size:  b.Size,
		Image: b.Image,
	}
}

func (b *CarBuilder) BuildDomain() *car.Car {
	return car.ReconstructCar(b.ID, b.Name, b.Price, car.Size(b.Size), b.Image,
		b.IsCurrentlyRented, b.CreatedAt, b.UpdatedAt)
}

func (b *CarBuilder) BuildInfra() sqlc.Cars {
	return sqlc.Cars{
		ID:                b.ID,
		Name:              b.Name,
		Price:             b.Price,
		Size:              b.Size,
		Image:             b.Image,
		IsCurrentlyRented: b.IsCurrentlyRented,
		CreatedAt:         pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:         pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func (b *CarBuilder) BuildView() queries.CarView {
	return queries.CarView{
		ID:                b.ID,
		Name:              b.Name,
		Price:             b.Price,
		Size:              b.Size,
		Image:             b.Image,
		IsCurrentlyRented: b.IsCurrentlyRented,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

func (b *CarBuilder) BuildSnapshot() *shared.CarSnapshot {
	return &shared.CarSnapshot{
		ID:                b.ID,
		Name:              b.Name,
		Price:             b.Price,
		Size:              b.Size,
		Image:             b.Image,
		IsCurrentlyRented: b.IsCurrentlyRented,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

func (b *CarBuilder) BuildInput() commands.CarInput {
	return commands.CarInput{
		Name:  b.Name,
		Price: b.Price,
		Size:  b.Size,
		Image: b.Image,
	}
}

func (b *CarBuilder) BuildRequestDTO() reqdto.CarRequest {
	price := b.Price
	return reqdto.CarRequest{
		Name:  b.Name,
		Price: &price,
		Size:  b.Size,
		Image: b.Image,
	}
}

// Fluent builder methods
func (b *CarBuilder) WithID(id uuid.UUID) *CarBuilder {
	b.ID = id
	return b
}

func (b *CarBuilder) WithName(name string) *CarBuilder {
	b.Name = name
	return b
}

func (b *CarBuilder) WithPrice(price int64) *CarBuilder {
	b.Price = price
	return b
}

func (b *CarBuilder) WithSize(size string) *CarBuilder {
	b.Size = size
	return b
}

func (b *CarBuilder) AsRented() *CarBuilder {
	b.IsCurrentlyRented = true
	return b
}
