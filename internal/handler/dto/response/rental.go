package response

import (
	"time"

	"car-rental-api/internal/usecase/queries"
	"car-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type RentalResponse struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	CarID         uuid.UUID `json:"carId"`
	CarName       string    `json:"carName,omitempty"`
	RentStartedAt time.Time `json:"rentStartedAt"`
	RentEndedAt   time.Time `json:"rentEndedAt"`
	CreatedAt     time.Time `json:"createdAt"`
}

type RentalListResponse struct {
	Rentals []RentalResponse `json:"rentals"`
	Meta    MetaResponse     `json:"meta"`
}

func FromRentalSnapshot(s *shared.RentalSnapshot) (RentalResponse, error) {
	return copyTo[RentalResponse](s)
}

func FromRentalList(l *queries.RentalList) (RentalListResponse, error) {
	rentals, err := copyTo[[]RentalResponse](l.Rentals)
	if err != nil {
		return RentalListResponse{}, err
	}
	if rentals == nil {
		rentals = []RentalResponse{}
	}
	return RentalListResponse{Rentals: rentals, Meta: NewMeta(l.Pagination)}, nil
}
