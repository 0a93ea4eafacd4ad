package rampaged

// PageInfo describes the position of a page within the full result set.
type PageInfo struct {
	TotalCount  int64 `json:"totalCount"`
	PageSize    int   `json:"pageSize"`
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
}

// NewPageInfo computes TotalPages = ceil(totalCount / pageSize).
func NewPageInfo(totalCount int64, pageNumber, pageSize int) PageInfo {
	return PageInfo{
		TotalCount:  totalCount,
		PageSize:    pageSize,
		CurrentPage: pageNumber,
		TotalPages:  totalPages(totalCount, pageSize),
	}
}

func totalPages(totalCount int64, pageSize int) int {
	if pageSize <= 0 || totalCount <= 0 {
		return 0
	}

	return int((totalCount + int64(pageSize) - 1) / int64(pageSize))
}

func (i *PageInfo) HasPrevious() bool {
	return i != nil && i.CurrentPage > 1
}

func (i *PageInfo) HasNext() bool {
	return i != nil && i.CurrentPage < i.TotalPages
}

// Page is a generic page of results. It is created once per query and owned
// by the caller.
type Page[T any] struct {
	Items []T `json:"items"`
	PageInfo
}

// NewPage builds a page from already fetched items.
func NewPage[T any](items []T, totalCount int64, pageNumber, pageSize int) *Page[T] {
	if items == nil {
		items = []T{}
	}

	return &Page[T]{
		Items:    items,
		PageInfo: NewPageInfo(totalCount, pageNumber, pageSize),
	}
}

// NewPageFor builds a page using the page number and size of pageable.
func NewPageFor[T any](items []T, totalCount int64, pageable Pageable) *Page[T] {
	return NewPage(items, totalCount, pageable.GetPageNumber(), pageable.GetPageSize())
}

// Info returns the page metadata, or nil for a nil page.
func (p *Page[T]) Info() *PageInfo {
	if p == nil {
		return nil
	}

	return &p.PageInfo
}
