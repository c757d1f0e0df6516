package request

import (
	"time"

	"car-rental-api/internal/usecase/commands"
)

// CarRequest is used for both create and full update.
type CarRequest struct {
	Name  string `json:"name" binding:"required,max=255"`
	Price *int64 `json:"price" binding:"required,min=0"`
	Size  string `json:"size" binding:"required,carsize"`
	Image string `json:"image" binding:"omitempty,max=2048"`
}

func (r *CarRequest) ToInput() commands.CarInput {
	var price int64
	if r.Price != nil {
		price = *r.Price
	}
	return commands.CarInput{
		Name:  r.Name,
		Price: price,
		Size:  r.Size,
		Image: r.Image,
	}
}

type RentCarRequest struct {
	RentStartedAt time.Time `json:"rentStartedAt" binding:"required"`
	RentEndedAt   time.Time `json:"rentEndedAt" binding:"required,gtfield=RentStartedAt"`
}

// PageQuery binds ?pageSize=&page=. Absent values stay nil so defaults apply downstream.
type PageQuery struct {
	PageSize *int `form:"pageSize"`
	Page     *int `form:"page"`
}
