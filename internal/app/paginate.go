package app

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Paginated wraps one page of results together with page bookkeeping.
type Paginated[T any] struct {
	Results             []T   `json:"results"`
	ElementsCurrentPage int   `json:"elementsCurrentPage"`
	CurrentPage         int   `json:"currentPage"`
	NumberOfPages       int   `json:"numberOfPages"`
	TotalElements       int64 `json:"totalElements"`
}

// NormalizePage clamps a zero-based page index and page size to sane values.
func NormalizePage(page, size int) (int, int) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return page, size
}

func NewPaginated[T any](results []T, page, size int, total int64) Paginated[T] {
	if results == nil {
		results = []T{}
	}
	pages := int((total + int64(size) - 1) / int64(size))
	return Paginated[T]{
		Results:             results,
		ElementsCurrentPage: len(results),
		CurrentPage:         page,
		NumberOfPages:       pages,
		TotalElements:       total,
	}
}
