package queries

import (
	"math"

	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/pkg/patch"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

var ErrInvalidPagination = errs.New("invalid pagination parameters")

// QueryOptions is the offset/limit pair handed to a store.
type QueryOptions struct {
	Offset int
	Limit  int
}

type Summary struct {
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
	TotalCount  int `json:"totalCount"`
	TotalPages  int `json:"totalPages"`
}

// Paginator converts page-based client parameters into store options and summaries.
// Nil parameters fall back to the default page size and the first page.
type Paginator struct {
	defaultPageSize int
	maxPageSize     int
}

func NewPaginator(defaultPageSize, maxPageSize int) Paginator {
	if maxPageSize <= 0 {
		maxPageSize = MaxPageSize
	}
	if defaultPageSize <= 0 || defaultPageSize > maxPageSize {
		defaultPageSize = min(DefaultPageSize, maxPageSize)
	}
	return Paginator{defaultPageSize: defaultPageSize, maxPageSize: maxPageSize}
}

var defaultPaginator = NewPaginator(DefaultPageSize, MaxPageSize)

func ToQueryOptions(pageSize, pageNumber *int) (QueryOptions, error) {
	return defaultPaginator.ToQueryOptions(pageSize, pageNumber)
}

func ToSummary(pageSize, pageNumber *int, totalCount int) (Summary, error) {
	return defaultPaginator.ToSummary(pageSize, pageNumber, totalCount)
}

func (p Paginator) ToQueryOptions(pageSize, pageNumber *int) (QueryOptions, error) {
	size, page, err := p.resolve(pageSize, pageNumber)
	if err != nil {
		return QueryOptions{}, err
	}
	return QueryOptions{
		Offset: (page - 1) * size,
		Limit:  size,
	}, nil
}

func (p Paginator) ToSummary(pageSize, pageNumber *int, totalCount int) (Summary, error) {
	size, page, err := p.resolve(pageSize, pageNumber)
	if err != nil {
		return Summary{}, err
	}
	if totalCount < 0 {
		return Summary{}, errs.Wrapf(ErrInvalidPagination, "negative total count %d", totalCount)
	}
	return Summary{
		CurrentPage: page,
		PageSize:    size,
		TotalCount:  totalCount,
		TotalPages:  (totalCount + size - 1) / size,
	}, nil
}

func (p Paginator) resolve(pageSize, pageNumber *int) (size, page int, err error) {
	size = patch.Coalesce(pageSize, p.defaultPageSize)
	page = patch.Coalesce(pageNumber, 1)
	if size <= 0 || size > p.maxPageSize {
		return 0, 0, errs.Wrapf(ErrInvalidPagination, "page size must be between 1 and %d", p.maxPageSize)
	}
	if page <= 0 {
		return 0, 0, errs.Wrap(ErrInvalidPagination, "page number must be positive")
	}
	// offset is sent to the store as int4
	if page-1 > math.MaxInt32/size {
		return 0, 0, errs.Wrapf(ErrInvalidPagination, "page number %d is out of range", page)
	}
	return size, page, nil
}
