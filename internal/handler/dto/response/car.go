package response

import (
	"time"

	"car-rental-api/internal/usecase/queries"
	"car-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CarResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Price             int64     `json:"price"`
	Size              string    `json:"size"`
	Image             string    `json:"image"`
	IsCurrentlyRented bool      `json:"isCurrentlyRented"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type CarListResponse struct {
	Cars []CarResponse `json:"cars"`
	Meta MetaResponse  `json:"meta"`
}

type CarAlreadyRentedDetails struct {
	Car CarResponse `json:"car"`
}

func FromCarView(v *queries.CarView) (CarResponse, error) {
	return copyTo[CarResponse](v)
}

func FromCarList(l *queries.CarList) (CarListResponse, error) {
	cars, err := copyTo[[]CarResponse](l.Cars)
	if err != nil {
		return CarListResponse{}, err
	}
	if cars == nil {
		cars = []CarResponse{}
	}
	return CarListResponse{Cars: cars, Meta: NewMeta(l.Pagination)}, nil
}

func FromCarSnapshot(s shared.CarSnapshot) (CarAlreadyRentedDetails, error) {
	car, err := copyTo[CarResponse](&s)
	if err != nil {
		return CarAlreadyRentedDetails{}, err
	}
	return CarAlreadyRentedDetails{Car: car}, nil
}
