package models

type SortOrder struct {
	Property string
	Desc     bool
}

type Pageable struct {
	Page int
	Size int
	Sort []SortOrder
}

func (p Pageable) Offset() int {
	return p.Page * p.Size
}

type Page[T any] struct {
	Content  []T
	Total    int64
	Pageable Pageable
}

// TotalPages is at least 1 so that an empty result still has a first and last page.
func (p Page[T]) TotalPages() int {
	if p.Pageable.Size <= 0 || p.Total == 0 {
		return 1
	}
	return int((p.Total + int64(p.Pageable.Size) - 1) / int64(p.Pageable.Size))
}

func (p Page[T]) HasNext() bool {
	return p.Pageable.Page+1 < p.TotalPages()
}

func (p Page[T]) HasPrevious() bool {
	return p.Pageable.Page > 0
}
