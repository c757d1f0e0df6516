package response

import (
	"car-rental-api/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type PaginationResponse struct {
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
	TotalCount  int `json:"totalCount"`
	TotalPages  int `json:"totalPages"`
}

type MetaResponse struct {
	Pagination PaginationResponse `json:"pagination"`
}

func NewMeta(s queries.Summary) MetaResponse {
	return MetaResponse{Pagination: PaginationResponse(s)}
}

func copyTo[T any](src any) (T, error) {
	var dst T
	err := copier.Copy(&dst, src)
	return dst, err
}
