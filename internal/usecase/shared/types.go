package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands independent from read-side view types
type CarSnapshot struct {
	ID                uuid.UUID
	Name              string
	Price             int64
	Size              string
	Image             string
	IsCurrentlyRented bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type RentalSnapshot struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	CarID         uuid.UUID
	RentStartedAt time.Time
	RentEndedAt   time.Time
	CreatedAt     time.Time
}
