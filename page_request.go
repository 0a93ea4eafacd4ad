package rampaged

// Pageable is implemented by PageRequest and, through embedding, by any API
// request struct that carries paging parameters.
type Pageable interface {
	GetPageNumber() int
	GetPageSize() int
	GetSortBy() string
	SkipCount() int
}

// PageRequest is intended for API payloads and query strings. Embed it to
// add filters of your own:
//
//	type ListOrdersRequest struct {
//	    rampaged.PageRequest `json:",inline"`
//	    Status string `form:"status" query:"status"`
//	}
//
// Zero values mean "unset": PageNumber falls back to DefaultPageNumber and
// PageSize to DefaultPageSize.
type PageRequest struct {
	// PageNumber - 1-based page index.
	PageNumber int `json:"pageNumber" form:"pageNumber" query:"pageNumber" validate:"gte=0"`
	// PageSize - number of items per page. Values above MaxPageSize are clamped.
	PageSize int `json:"pageSize" form:"pageSize" query:"pageSize" validate:"gte=0"`
	// SortBy - comma separated field list, "-" prefix for descending order.
	SortBy string `json:"sortBy,omitempty" form:"sortBy" query:"sortBy"`
}

// NewPageRequest builds a normalized PageRequest.
func NewPageRequest(pageNumber, pageSize int, sortBy string) *PageRequest {
	return (&PageRequest{SortBy: sortBy}).
		WithPageNumber(pageNumber).
		WithPageSize(pageSize)
}

// WithPageNumber sets the page number. Values below 1 select the first page.
func (p *PageRequest) WithPageNumber(pageNumber int) *PageRequest {
	if p == nil {
		p = new(PageRequest)
	}

	p.PageNumber = NormalizePageNumber(pageNumber)

	return p
}

// WithPageSize sets the page size, clamping it to MaxPageSize.
func (p *PageRequest) WithPageSize(pageSize int) *PageRequest {
	if p == nil {
		p = new(PageRequest)
	}

	p.PageSize = NormalizePageSize(pageSize)

	return p
}

// WithSortBy sets the raw sort string.
func (p *PageRequest) WithSortBy(sortBy string) *PageRequest {
	if p == nil {
		p = new(PageRequest)
	}

	p.SortBy = sortBy

	return p
}

// GetPageNumber - implements Pageable. Always >= 1.
func (p *PageRequest) GetPageNumber() int {
	if p == nil {
		return DefaultPageNumber
	}

	return NormalizePageNumber(p.PageNumber)
}

// GetPageSize - implements Pageable. Always within [1, MaxPageSize].
func (p *PageRequest) GetPageSize() int {
	if p == nil {
		return DefaultPageSize
	}

	return NormalizePageSize(p.PageSize)
}

// GetSortBy - implements Pageable.
func (p *PageRequest) GetSortBy() string {
	if p == nil {
		return ""
	}

	return p.SortBy
}

// SkipCount - implements Pageable. Returns PageSize * (PageNumber - 1), which
// is never negative. Being a method, it never shows up in QueryValues.
func (p *PageRequest) SkipCount() int {
	return p.GetPageSize() * (p.GetPageNumber() - 1)
}

// ShouldSort reports whether a sort string was supplied.
func (p *PageRequest) ShouldSort() bool {
	return !isBlank(p.GetSortBy())
}

var _ Pageable = (*PageRequest)(nil)
