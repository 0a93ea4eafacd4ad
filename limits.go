package rampaged

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
	MaxPageSize       = 200
)

// IsNormalizedPageSizeMax returns the effective page size and whether the
// input was already valid. Sizes above maxPageSize are clamped, not rejected.
func IsNormalizedPageSizeMax(pageSize int, maxPageSize int) (int, bool) {
	if pageSize <= 0 {
		return DefaultPageSize, false
	} else if pageSize > maxPageSize {
		return maxPageSize, false
	}

	return pageSize, true
}

func NormalizePageSizeMax(pageSize int, maxPageSize int) int {
	ret, _ := IsNormalizedPageSizeMax(pageSize, maxPageSize)
	return ret
}

func NormalizePageSize(pageSize int) int {
	return NormalizePageSizeMax(pageSize, MaxPageSize)
}

// NormalizePageNumber maps unset or negative page numbers to the first page.
func NormalizePageNumber(pageNumber int) int {
	if pageNumber < DefaultPageNumber {
		return DefaultPageNumber
	}

	return pageNumber
}
