package queries

import (
	"time"

	"github.com/google/uuid"
)

// CarView represents read-optimized car data
type CarView struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Price             int64     `json:"price"`
	Size              string    `json:"size"`
	Image             string    `json:"image"`
	IsCurrentlyRented bool      `json:"is_currently_rented"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// RentalView represents a rental joined with the rented car's name
type RentalView struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	CarID         uuid.UUID `json:"car_id"`
	CarName       string    `json:"car_name"`
	RentStartedAt time.Time `json:"rent_started_at"`
	RentEndedAt   time.Time `json:"rent_ended_at"`
	CreatedAt     time.Time `json:"created_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

type CarList struct {
	Cars       []CarView
	Pagination Summary
}

type RentalList struct {
	Rentals    []RentalView
	Pagination Summary
}
