package rental

import (
	"time"

	"github.com/google/uuid"
)

type Rental struct {
	id        uuid.UUID
	userID    uuid.UUID
	carID     uuid.UUID
	window    Window
	createdAt time.Time
}

func NewRental(userID, carID uuid.UUID, window Window, now time.Time) *Rental {
	return &Rental{
		id:        uuid.New(),
		userID:    userID,
		carID:     carID,
		window:    window,
		createdAt: now,
	}
}

func ReconstructRental(id, userID, carID uuid.UUID, window Window, createdAt time.Time) *Rental {
	return &Rental{
		id:        id,
		userID:    userID,
		carID:     carID,
		window:    window,
		createdAt: createdAt,
	}
}

// BlocksBooking reports whether r prevents a new booking of the same car for requested.
// Only rentals whose window lies within the requested one block it.
func (r *Rental) BlocksBooking(requested Window) bool {
	return requested.Contains(r.window)
}

func (r *Rental) ID() uuid.UUID        { return r.id }
func (r *Rental) UserID() uuid.UUID    { return r.userID }
func (r *Rental) CarID() uuid.UUID     { return r.carID }
func (r *Rental) Window() Window       { return r.window }
func (r *Rental) CreatedAt() time.Time { return r.createdAt }
